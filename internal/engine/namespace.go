package engine

import (
	"context"

	"github.com/practo/klog/v2"
	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/match"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
)

// ProcessNamespaceFanOut implements C5: every Namespace object matching expr
// fans out to the four workload kinds inside it, processed in
// resource.FanOutOrder (HPA first, so it is pinned before its target's
// replica count is changed underneath it). A Namespace is
// never itself patched; it is only ever a selector.
func ProcessNamespaceFanOut(ctx context.Context, clientset kubernetes.Interface, registry resource.Registry, ruleID, expr string, isUp bool, ruleTarget *int32, metrics Metrics) ([]Result, error) {
	nsAdapter, ok := registry[config.KindNamespace]
	if !ok {
		return nil, nil
	}
	objs, err := nsAdapter.List(ctx, clientset, "")
	if err != nil {
		return nil, err
	}

	var matchedNames []string
	for _, obj := range objs {
		matched, err := match.Matches(obj.Raw, expr)
		if err != nil {
			klog.Errorf("rule %s: namespace expression match failed for %s: %v", ruleID, obj.Name, err)
			continue
		}
		if matched {
			matchedNames = append(matchedNames, obj.Name)
		}
	}

	var results []Result
	for _, name := range matchedNames {
		for _, kind := range resource.FanOutOrder {
			kindResults, err := ProcessKind(ctx, clientset, registry, kind, name, ruleID, expr, isUp, ruleTarget, false, metrics)
			if err != nil {
				klog.Errorf("rule %s: namespace %s kind %s failed: %v", ruleID, name, kind, err)
				continue
			}
			results = append(results, kindResults...)
		}
	}

	return results, nil
}

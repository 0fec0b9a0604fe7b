package engine

import (
	"context"
	"fmt"

	"github.com/practo/klog/v2"
	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/match"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
)

// ListKind returns every object of kind in namespace (cluster-wide when
// namespace is ""). Split out from decide/apply so a caller may list
// several kinds concurrently before applying patches strictly in order
// (listing may run concurrently; patches must not).
func ListKind(ctx context.Context, clientset kubernetes.Interface, registry resource.Registry, kind config.Kind, namespace string) ([]resource.Object, error) {
	adapter, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for kind %s", kind)
	}
	return adapter.List(ctx, clientset, namespace)
}

// ProcessKind lists every object of kind in namespace, matches it against
// expr (unless filterByExpression is false, as under namespace fan-out —
// no further expression filtering is applied once a Namespace has
// already matched), decides, and applies. Errors from a single object never
// abort the kind; they are logged and the object is skipped.
func ProcessKind(ctx context.Context, clientset kubernetes.Interface, registry resource.Registry, kind config.Kind, namespace, ruleID, expr string, isUp bool, ruleTarget *int32, filterByExpression bool, metrics Metrics) ([]Result, error) {
	objs, err := ListKind(ctx, clientset, registry, kind, namespace)
	if err != nil {
		return nil, err
	}
	return DecideAndApply(ctx, clientset, registry, kind, ruleID, expr, isUp, ruleTarget, filterByExpression, metrics, objs)
}

// DecideAndApply runs the match/decide/apply pipeline over an already-listed
// set of objects of a single kind.
func DecideAndApply(ctx context.Context, clientset kubernetes.Interface, registry resource.Registry, kind config.Kind, ruleID, expr string, isUp bool, ruleTarget *int32, filterByExpression bool, metrics Metrics, objs []resource.Object) ([]Result, error) {
	adapter, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for kind %s", kind)
	}

	var results []Result
	for _, obj := range objs {
		if filterByExpression {
			matched, err := match.Matches(obj.Raw, expr)
			if err != nil {
				klog.Errorf("rule %s: expression match failed for %s %s/%s: %v", ruleID, kind, obj.Namespace, obj.Name, err)
				continue
			}
			if !matched {
				continue
			}
		}

		currentNative, hasNative := adapter.NativeCount(obj)
		decision, err := Decide(kind, obj.Annotations, currentNative, hasNative, isUp, ruleTarget)
		if err != nil {
			klog.Errorf("rule %s: decision failed for %s %s/%s: %v", ruleID, kind, obj.Namespace, obj.Name, err)
			continue
		}
		if decision.Action == NoOp {
			continue
		}

		if err := Apply(ctx, clientset, adapter, obj, decision, metrics); err != nil {
			continue
		}

		results = append(results, Result{
			RuleID:    ruleID,
			Kind:      kind,
			Namespace: obj.Namespace,
			Name:      obj.Name,
			Action:    decision.Action,
		})
	}

	return results, nil
}

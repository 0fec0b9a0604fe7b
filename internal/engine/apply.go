package engine

import (
	"context"

	"github.com/practo/klog/v2"
	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
)

// Metrics is the subset of the Prometheus counters (C8) the engine needs to
// increment. Defined here, rather than importing internal/metrics directly,
// so engine stays free of a prometheus dependency; internal/metrics provides
// the concrete implementation.
type Metrics interface {
	IncScaleUpSuccess()
	IncScaleUpFailure()
	IncScaleDownSuccess()
	IncScaleDownFailure()
}

// Result records one object that was acted on by a rule, for the CSV/Slack
// notifier (C8) to report.
type Result struct {
	RuleID    string
	Kind      config.Kind
	Namespace string
	Name      string
	Action    Action
}

// Apply patches obj per decision and reports the outcome to metrics. A NoOp
// decision is a no-op here too: nothing is patched, nothing is counted.
func Apply(ctx context.Context, clientset kubernetes.Interface, adapter resource.Adapter, obj resource.Object, decision Decision, metrics Metrics) error {
	if decision.Action == NoOp {
		return nil
	}

	downscale := decision.Action == Downscale
	err := adapter.Patch(ctx, clientset, obj.Namespace, obj.Name, decision.Annotations, decision.Target, downscale)

	switch decision.Action {
	case Downscale:
		if err != nil {
			metrics.IncScaleDownFailure()
			klog.Errorf("downscale %s %s/%s failed: %v", obj.Kind, obj.Namespace, obj.Name, err)
			return err
		}
		metrics.IncScaleDownSuccess()
		klog.V(2).Infof("downscaled %s %s/%s to %d", obj.Kind, obj.Namespace, obj.Name, decision.Target)
	case Upscale:
		if err != nil {
			metrics.IncScaleUpFailure()
			klog.Errorf("upscale %s %s/%s failed: %v", obj.Kind, obj.Namespace, obj.Name, err)
			return err
		}
		metrics.IncScaleUpSuccess()
		klog.V(2).Infof("upscaled %s %s/%s to %d", obj.Kind, obj.Namespace, obj.Name, decision.Target)
	}

	return nil
}

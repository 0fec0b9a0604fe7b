// Package operator implements the external collaborator contract (C7): an
// operator watching Upscaler objects forces an immediate scale-up through
// the same C3+C4 path the engine's own ticks use, with isUp forced true.
package operator

import (
	"context"
	"fmt"

	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/engine"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
)

// ForceUpscale upscales every object of kind matching expr, overriding
// replicas when non-nil. It reuses engine.Decide/Apply exactly as a normal
// tick would, with isUp forced true — an object not currently downscaled
// is left alone, matching the engine's own no-op row for that case.
func ForceUpscale(ctx context.Context, clientset kubernetes.Interface, registry resource.Registry, kind config.Kind, expr string, replicas *int32, metrics engine.Metrics) ([]engine.Result, error) {
	if kind == config.KindNamespace {
		return engine.ProcessNamespaceFanOut(ctx, clientset, registry, "upscaler", expr, true, replicas, metrics)
	}

	results, err := engine.ProcessKind(ctx, clientset, registry, kind, "", "upscaler", expr, true, replicas, true, metrics)
	if err != nil {
		return nil, fmt.Errorf("force upscale kind %s: %w", kind, err)
	}
	return results, nil
}

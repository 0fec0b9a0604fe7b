package resource

import (
	"context"
	"encoding/json"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/errs"
)

type hpaAdapter struct{}

func (a *hpaAdapter) Kind() config.Kind { return config.KindHPA }

func (a *hpaAdapter) List(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Object, error) {
	list, err := clientset.AutoscalingV2().HorizontalPodAutoscalers(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errs.New(errs.KubeAPI, fmt.Errorf("list horizontalpodautoscalers: %w", err))
	}
	objs := make([]Object, 0, len(list.Items))
	for _, h := range list.Items {
		objs = append(objs, Object{
			Kind:        config.KindHPA,
			Namespace:   h.Namespace,
			Name:        h.Name,
			Replicas:    h.Spec.MinReplicas,
			Annotations: h.Annotations,
			Raw:         &h,
		})
	}
	return objs, nil
}

func (a *hpaAdapter) NativeCount(obj Object) (int32, bool) {
	if obj.Replicas == nil {
		return 1, true
	}
	return *obj.Replicas, true
}

// Patch enforces the HPA invariant: minReplicas >= 1 regardless
// of rule configuration.
func (a *hpaAdapter) Patch(ctx context.Context, clientset kubernetes.Interface, namespace, name string, annotations map[string]string, target int32, downscale bool) error {
	clamped := target
	if clamped < 1 {
		clamped = 1
	}
	patch, err := json.Marshal(map[string]any{
		"metadata": map[string]any{"annotations": annotations},
		"spec":     map[string]any{"minReplicas": clamped},
	})
	if err != nil {
		return errs.New(errs.UserInput, err)
	}
	_, err = clientset.AutoscalingV2().HorizontalPodAutoscalers(namespace).Patch(ctx, name, types.MergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return errs.New(errs.KubeAPI, fmt.Errorf("patch hpa %s/%s: %w", namespace, name, err))
	}
	return nil
}

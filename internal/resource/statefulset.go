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

type statefulSetAdapter struct{}

func (a *statefulSetAdapter) Kind() config.Kind { return config.KindStatefulSet }

func (a *statefulSetAdapter) List(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Object, error) {
	list, err := clientset.AppsV1().StatefulSets(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errs.New(errs.KubeAPI, fmt.Errorf("list statefulsets: %w", err))
	}
	objs := make([]Object, 0, len(list.Items))
	for _, s := range list.Items {
		objs = append(objs, Object{
			Kind:        config.KindStatefulSet,
			Namespace:   s.Namespace,
			Name:        s.Name,
			Replicas:    s.Spec.Replicas,
			Annotations: s.Annotations,
			Raw:         &s,
		})
	}
	return objs, nil
}

func (a *statefulSetAdapter) NativeCount(obj Object) (int32, bool) {
	if obj.Replicas == nil {
		return 0, false
	}
	return *obj.Replicas, true
}

func (a *statefulSetAdapter) Patch(ctx context.Context, clientset kubernetes.Interface, namespace, name string, annotations map[string]string, target int32, downscale bool) error {
	patch, err := json.Marshal(map[string]any{
		"metadata": map[string]any{"annotations": annotations},
		"spec":     map[string]any{"replicas": target},
	})
	if err != nil {
		return errs.New(errs.UserInput, err)
	}
	_, err = clientset.AppsV1().StatefulSets(namespace).Patch(ctx, name, types.MergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return errs.New(errs.KubeAPI, fmt.Errorf("patch statefulset %s/%s: %w", namespace, name, err))
	}
	return nil
}

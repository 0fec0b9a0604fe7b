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

type deploymentAdapter struct{}

func (a *deploymentAdapter) Kind() config.Kind { return config.KindDeployment }

func (a *deploymentAdapter) List(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Object, error) {
	list, err := clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errs.New(errs.KubeAPI, fmt.Errorf("list deployments: %w", err))
	}
	objs := make([]Object, 0, len(list.Items))
	for _, d := range list.Items {
		objs = append(objs, Object{
			Kind:        config.KindDeployment,
			Namespace:   d.Namespace,
			Name:        d.Name,
			Replicas:    d.Spec.Replicas,
			Annotations: d.Annotations,
			Raw:         &d,
		})
	}
	return objs, nil
}

func (a *deploymentAdapter) NativeCount(obj Object) (int32, bool) {
	if obj.Replicas == nil {
		return 0, false
	}
	return *obj.Replicas, true
}

func (a *deploymentAdapter) Patch(ctx context.Context, clientset kubernetes.Interface, namespace, name string, annotations map[string]string, target int32, downscale bool) error {
	patch, err := json.Marshal(map[string]any{
		"metadata": map[string]any{"annotations": annotations},
		"spec":     map[string]any{"replicas": target},
	})
	if err != nil {
		return errs.New(errs.UserInput, err)
	}
	_, err = clientset.AppsV1().Deployments(namespace).Patch(ctx, name, types.MergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return errs.New(errs.KubeAPI, fmt.Errorf("patch deployment %s/%s: %w", namespace, name, err))
	}
	return nil
}

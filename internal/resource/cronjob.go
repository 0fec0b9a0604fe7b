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

type cronJobAdapter struct{}

func (a *cronJobAdapter) Kind() config.Kind { return config.KindCronJob }

func (a *cronJobAdapter) List(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Object, error) {
	list, err := clientset.BatchV1().CronJobs(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errs.New(errs.KubeAPI, fmt.Errorf("list cronjobs: %w", err))
	}
	objs := make([]Object, 0, len(list.Items))
	for _, c := range list.Items {
		objs = append(objs, Object{
			Kind:        config.KindCronJob,
			Namespace:   c.Namespace,
			Name:        c.Name,
			Replicas:    nil, // CronJob has no replica-like field; suspend is used instead.
			Annotations: c.Annotations,
			Raw:         &c,
		})
	}
	return objs, nil
}

// NativeCount always returns ok=false: CronJob has no replica-like field.
func (a *cronJobAdapter) NativeCount(obj Object) (int32, bool) {
	return 0, false
}

// Patch sets spec.suspend instead of a replica count; target is ignored.
func (a *cronJobAdapter) Patch(ctx context.Context, clientset kubernetes.Interface, namespace, name string, annotations map[string]string, target int32, downscale bool) error {
	patch, err := json.Marshal(map[string]any{
		"metadata": map[string]any{"annotations": annotations},
		"spec":     map[string]any{"suspend": downscale},
	})
	if err != nil {
		return errs.New(errs.UserInput, err)
	}
	_, err = clientset.BatchV1().CronJobs(namespace).Patch(ctx, name, types.MergePatchType, patch, metav1.PatchOptions{})
	if err != nil {
		return errs.New(errs.KubeAPI, fmt.Errorf("patch cronjob %s/%s: %w", namespace, name, err))
	}
	return nil
}

package resource

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/errs"
)

// namespaceAdapter lists Namespace objects for expression matching only.
// A matched Namespace is never itself scaled; it is a grouping selector
// that fans out to the four workload kinds inside it.
type namespaceAdapter struct{}

func (a *namespaceAdapter) Kind() config.Kind { return config.KindNamespace }

func (a *namespaceAdapter) List(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Object, error) {
	list, err := clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errs.New(errs.KubeAPI, fmt.Errorf("list namespaces: %w", err))
	}
	objs := make([]Object, 0, len(list.Items))
	for _, n := range list.Items {
		objs = append(objs, Object{
			Kind:        config.KindNamespace,
			Namespace:   "",
			Name:        n.Name,
			Annotations: n.Annotations,
			Raw:         &n,
		})
	}
	return objs, nil
}

func (a *namespaceAdapter) NativeCount(obj Object) (int32, bool) {
	return 0, false
}

func (a *namespaceAdapter) Patch(ctx context.Context, clientset kubernetes.Interface, namespace, name string, annotations map[string]string, target int32, downscale bool) error {
	return errs.New(errs.UserInput, fmt.Errorf("namespace %q is a selector, not a scalable resource", name))
}

package operator

import (
	"context"

	"github.com/practo/klog/v2"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/client-go/kubernetes"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/engine"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
	scalerv1 "github.com/practo/k8s-uptime-scaler/pkg/apis/scaler/v1"
)

const finalizerName = "k8s-uptime-scaler.practo.dev/force-upscale"

// Reconciler watches Upscaler objects and forces an immediate scale-up for
// every listed ScaleTarget, then removes its own finalizer so the trigger
// object is garbage collected. Garbage-collection mechanics beyond that
// single finalizer are left to the apiserver.
type Reconciler struct {
	client.Client

	Clientset kubernetes.Interface
	Registry  resource.Registry
	Metrics   engine.Metrics
}

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var obj scalerv1.Upscaler
	if err := r.Get(ctx, req.NamespacedName, &obj); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !obj.DeletionTimestamp.IsZero() {
		return ctrl.Result{}, nil
	}

	for _, target := range obj.Spec.Scale {
		kind, err := config.ParseKind(target.Resource)
		if err != nil {
			klog.Errorf("upscaler %s/%s: %v", obj.Namespace, obj.Name, err)
			continue
		}
		if _, err := ForceUpscale(ctx, r.Clientset, r.Registry, kind, target.Expression, target.Replicas, r.Metrics); err != nil {
			klog.Errorf("upscaler %s/%s: force upscale of %s failed: %v", obj.Namespace, obj.Name, kind, err)
		}
	}

	if controllerutil.ContainsFinalizer(&obj, finalizerName) {
		controllerutil.RemoveFinalizer(&obj, finalizerName)
		if err := r.Update(ctx, &obj); err != nil {
			return ctrl.Result{}, err
		}
	}

	return ctrl.Result{}, nil
}

// SetupWithManager registers the Reconciler to watch Upscaler objects.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&scalerv1.Upscaler{}).
		Complete(r)
}

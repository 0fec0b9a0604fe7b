// Package resource implements the per-kind resource adapter (C3): listing
// matched objects in a scope, reading the "original" replica value, and
// applying an annotations+spec merge patch. One file per kind implements
// the Adapter interface; Registry selects by a tagged Kind instead of an
// inheritance hierarchy.
package resource

import (
	"context"

	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
)

// Object is the quintuple extracted from a
// live cluster object. Replicas is nil when the kind has no replica-like
// field (CronJob).
type Object struct {
	Kind        config.Kind
	Namespace   string
	Name        string
	Replicas    *int32
	Annotations map[string]string

	// Raw is the full typed cluster object (e.g. *appsv1.Deployment),
	// kept around so the expression matcher (C2) can evaluate a
	// path-expression against the complete JSON rendering of the object,
	// not just the ScopedObject fields above.
	Raw any
}

// Adapter is the per-kind capability set: a small
// record of functions rather than a class hierarchy.
type Adapter interface {
	Kind() config.Kind

	// List returns every object of this kind in namespace, or every
	// object cluster-wide when namespace is empty.
	List(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]Object, error)

	// NativeCount returns the kind's current replica-like field. ok is
	// false for CronJob, which has none.
	NativeCount(obj Object) (count int32, ok bool)

	// Patch applies the engine's merge patch: the three state
	// annotations plus the kind-appropriate spec field. target is the
	// desired replicas/minReplicas (ignored for CronJob); downscale
	// selects CronJob's suspend value and the Flux-reconcile annotation.
	Patch(ctx context.Context, clientset kubernetes.Interface, namespace, name string, annotations map[string]string, target int32, downscale bool) error
}

// Registry maps a Kind to its Adapter.
type Registry map[config.Kind]Adapter

// NewRegistry builds the adapter table for all five workload kinds.
func NewRegistry() Registry {
	return Registry{
		config.KindDeployment:  &deploymentAdapter{},
		config.KindStatefulSet: &statefulSetAdapter{},
		config.KindHPA:         &hpaAdapter{},
		config.KindCronJob:     &cronJobAdapter{},
		config.KindNamespace:   &namespaceAdapter{},
	}
}

// FanOutOrder is the fixed per-kind processing order under Namespace
// fan-out: HPA must be pinned before its Deployment target
// drops to zero, or the HPA will immediately scale it back up.
var FanOutOrder = []config.Kind{
	config.KindHPA,
	config.KindDeployment,
	config.KindStatefulSet,
	config.KindCronJob,
}

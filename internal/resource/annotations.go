package resource

import "strconv"

const (
	// AnnotationPrefix namespaces the engine's own state keys. Adapted
	// from the original source's "kubesaver.com/" prefix.
	AnnotationPrefix = "k8s-uptime-scaler.practo.dev/"

	// AnnotationDownscaled carries "true"/"false"/absent.
	AnnotationDownscaled = AnnotationPrefix + "is_downscaled"
	// AnnotationOriginalCount carries the replica count to restore.
	AnnotationOriginalCount = AnnotationPrefix + "original_count"
	// AnnotationIgnore, when "true", makes the engine a no-op for that object.
	AnnotationIgnore = AnnotationPrefix + "ignore"

	// AnnotationFluxReconcile is the known external GitOps-reconcile
	// annotation the engine clears/sets so an out-of-band reconciler does
	// not fight it.
	AnnotationFluxReconcile = "kustomize.toolkit.fluxcd.io/reconcile"

	fluxEnabled  = "enabled"
	fluxDisabled = "disabled"
)

// BuildAnnotations assembles the three-key patch body plus the Flux
// annotation, mirroring original_source's scaling_machinery::patching.
func BuildAnnotations(originalCount int32, downscaled bool) map[string]string {
	flux := fluxEnabled
	downscaledValue := "false"
	if downscaled {
		flux = fluxDisabled
		downscaledValue = "true"
	}
	return map[string]string{
		AnnotationDownscaled:    downscaledValue,
		AnnotationOriginalCount: strconv.Itoa(int(originalCount)),
		AnnotationFluxReconcile: flux,
	}
}

// Package engine implements the scaling state machine (C4) and the
// namespace fan-out (C5): the core, pure decision logic that makes
// scale-down/scale-up idempotent and crash-safe across restarts, grounded
// on original_source/src/downscaler/resource/common.rs's scaling_machinery.
package engine

import (
	"fmt"
	"strconv"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/errs"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
)

// Action is the effect the state machine decided on.
type Action int

const (
	NoOp Action = iota
	Downscale
	Upscale
)

// Decision is the at-most-one patch the state machine emits for an object.
type Decision struct {
	Action      Action
	Annotations map[string]string
	Target      int32 // desired replicas/minReplicas; ignored for CronJob
	Suspend     bool  // CronJob only
}

// kindDefaultTarget is the orchestrator-appropriate default when a rule's
// replicas field is null: 0 for replicated workloads, 1 for
// HPA, ignored for CronJob.
func kindDefaultTarget(kind config.Kind) int32 {
	if kind == config.KindHPA {
		return 1
	}
	return 0
}

// Decide implements the decision table, read top-to-bottom,
// first match wins. currentNative/hasNative is the object's current
// replica-like field (absent for CronJob); annotations is the object's
// current annotation map (may be nil).
func Decide(kind config.Kind, annotations map[string]string, currentNative int32, hasNative bool, isUp bool, ruleTarget *int32) (Decision, error) {
	if annotations[resource.AnnotationIgnore] == "true" {
		return Decision{Action: NoOp}, nil
	}

	downscaledValue, hasDownscaled := annotations[resource.AnnotationDownscaled]

	if isUp {
		if hasDownscaled && downscaledValue == "true" {
			orig, err := originalCount(annotations)
			if err != nil {
				return Decision{}, err
			}
			return Decision{
				Action:      Upscale,
				Annotations: resource.BuildAnnotations(orig, false),
				Target:      orig,
				Suspend:     false,
			}, nil
		}
		return Decision{Action: NoOp}, nil
	}

	// isUp == false.
	switch {
	case !hasDownscaled:
		return downscale(kind, currentNative, hasNative, ruleTarget), nil
	case downscaledValue == "false":
		// Re-downscale: original_count is refreshed from the
		// currently-observed native count, not remembered from the
		// first downscale.
		return downscale(kind, currentNative, hasNative, ruleTarget), nil
	default:
		// downscaledValue == "true": already down.
		return Decision{Action: NoOp}, nil
	}
}

func downscale(kind config.Kind, currentNative int32, hasNative bool, ruleTarget *int32) Decision {
	var orig int32
	if hasNative {
		orig = currentNative
	}
	target := kindDefaultTarget(kind)
	if ruleTarget != nil {
		target = *ruleTarget
	}
	return Decision{
		Action:      Downscale,
		Annotations: resource.BuildAnnotations(orig, true),
		Target:      target,
		Suspend:     true,
	}
}

func originalCount(annotations map[string]string) (int32, error) {
	raw, ok := annotations[resource.AnnotationOriginalCount]
	if !ok {
		return 0, errs.New(errs.UserInput, fmt.Errorf("missing %s annotation", resource.AnnotationOriginalCount))
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.New(errs.UserInput, fmt.Errorf("invalid %s annotation %q: %w", resource.AnnotationOriginalCount, raw, err))
	}
	return int32(n), nil
}

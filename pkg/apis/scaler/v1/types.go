// Package v1 holds the Upscaler custom resource: the declarative trigger
// an external operator watches to force an immediate scale-up outside a
// rule's normal uptime window.
package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +genclient
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// Upscaler is a specification for an Upscaler resource.
type Upscaler struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   UpscalerSpec   `json:"spec"`
	Status UpscalerStatus `json:"status"`
}

// UpscalerSpec lists the scale targets to force up immediately.
type UpscalerSpec struct {
	Scale []ScaleTarget `json:"scale"`
}

// ScaleTarget names one kind, the JMESPath expression selecting its
// objects, and an optional replica override (nil uses the kind's default:
// 1 for HPA, 0 otherwise, suspend=false for CronJob).
type ScaleTarget struct {
	Resource   string `json:"resource"`
	Expression string `json:"expression"`
	Replicas   *int32 `json:"replicas,omitempty"`
}

// UpscalerStatus reports the outcome of the most recent reconciliation.
type UpscalerStatus struct {
	Completed bool   `json:"completed"`
	Message   string `json:"message,omitempty"`
}

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// UpscalerList is a list of Upscaler resources.
type UpscalerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata"`

	Items []Upscaler `json:"items"`
}

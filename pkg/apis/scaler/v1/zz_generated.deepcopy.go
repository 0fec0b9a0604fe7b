// Code generated by hand in the style of k8s.io/code-generator's
// deepcopy-gen; kept minimal since the full generator pipeline is out of
// scope here.

package v1

import (
	runtime "k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto copies all properties into out.
func (in *ScaleTarget) DeepCopyInto(out *ScaleTarget) {
	*out = *in
	if in.Replicas != nil {
		out.Replicas = new(int32)
		*out.Replicas = *in.Replicas
	}
}

// DeepCopy creates a new ScaleTarget.
func (in *ScaleTarget) DeepCopy() *ScaleTarget {
	if in == nil {
		return nil
	}
	out := new(ScaleTarget)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *UpscalerSpec) DeepCopyInto(out *UpscalerSpec) {
	*out = *in
	if in.Scale != nil {
		out.Scale = make([]ScaleTarget, len(in.Scale))
		for i := range in.Scale {
			in.Scale[i].DeepCopyInto(&out.Scale[i])
		}
	}
}

// DeepCopy creates a new UpscalerSpec.
func (in *UpscalerSpec) DeepCopy() *UpscalerSpec {
	if in == nil {
		return nil
	}
	out := new(UpscalerSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *UpscalerStatus) DeepCopyInto(out *UpscalerStatus) {
	*out = *in
}

// DeepCopy creates a new UpscalerStatus.
func (in *UpscalerStatus) DeepCopy() *UpscalerStatus {
	if in == nil {
		return nil
	}
	out := new(UpscalerStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies all properties into out.
func (in *Upscaler) DeepCopyInto(out *Upscaler) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	out.Status = in.Status
}

// DeepCopy creates a new Upscaler.
func (in *Upscaler) DeepCopy() *Upscaler {
	if in == nil {
		return nil
	}
	out := new(Upscaler)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *Upscaler) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies all properties into out.
func (in *UpscalerList) DeepCopyInto(out *UpscalerList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	out.ListMeta = in.ListMeta
	if in.Items != nil {
		out.Items = make([]Upscaler, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

// DeepCopy creates a new UpscalerList.
func (in *UpscalerList) DeepCopy() *UpscalerList {
	if in == nil {
		return nil
	}
	out := new(UpscalerList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject implements runtime.Object.
func (in *UpscalerList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

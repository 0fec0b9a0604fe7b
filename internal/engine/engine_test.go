package engine

import (
	"context"
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
)

func int32Ptr(n int32) *int32 { return &n }

type fakeMetrics struct {
	upSuccess, upFailure, downSuccess, downFailure int
}

func (m *fakeMetrics) IncScaleUpSuccess()   { m.upSuccess++ }
func (m *fakeMetrics) IncScaleUpFailure()   { m.upFailure++ }
func (m *fakeMetrics) IncScaleDownSuccess() { m.downSuccess++ }
func (m *fakeMetrics) IncScaleDownFailure() { m.downFailure++ }

func TestDecide_FirstDownscale(t *testing.T) {
	d, err := Decide(config.KindDeployment, nil, 3, true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, Downscale, d.Action)
	assert.EqualValues(t, 0, d.Target)
	assert.Equal(t, "true", d.Annotations[resource.AnnotationDownscaled])
	assert.Equal(t, "3", d.Annotations[resource.AnnotationOriginalCount])
}

func TestDecide_FirstDownscale_HPADefaultsToOne(t *testing.T) {
	d, err := Decide(config.KindHPA, nil, 5, true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, Downscale, d.Action)
	assert.EqualValues(t, 1, d.Target)
}

func TestDecide_RuleReplicasOverridesDefault(t *testing.T) {
	d, err := Decide(config.KindDeployment, nil, 3, true, false, int32Ptr(2))
	require.NoError(t, err)
	assert.EqualValues(t, 2, d.Target)
}

func TestDecide_AlreadyDownscaled_NoOp(t *testing.T) {
	annotations := resource.BuildAnnotations(3, true)
	d, err := Decide(config.KindDeployment, annotations, 0, true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, NoOp, d.Action)
}

func TestDecide_ReDownscale_RefreshesOriginalCount(t *testing.T) {
	annotations := resource.BuildAnnotations(3, false)
	d, err := Decide(config.KindDeployment, annotations, 7, true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, Downscale, d.Action)
	assert.Equal(t, "7", d.Annotations[resource.AnnotationOriginalCount])
}

func TestDecide_Upscale_RestoresOriginalCount(t *testing.T) {
	annotations := resource.BuildAnnotations(5, true)
	d, err := Decide(config.KindDeployment, annotations, 0, true, true, nil)
	require.NoError(t, err)
	assert.Equal(t, Upscale, d.Action)
	assert.EqualValues(t, 5, d.Target)
	assert.Equal(t, "false", d.Annotations[resource.AnnotationDownscaled])
	assert.Equal(t, "5", d.Annotations[resource.AnnotationOriginalCount])
}

func TestDecide_UpscaleWhenNotDownscaled_NoOp(t *testing.T) {
	d, err := Decide(config.KindDeployment, nil, 3, true, true, nil)
	require.NoError(t, err)
	assert.Equal(t, NoOp, d.Action)
}

func TestDecide_IgnoreAnnotation_ShortCircuits(t *testing.T) {
	annotations := map[string]string{resource.AnnotationIgnore: "true"}
	d, err := Decide(config.KindDeployment, annotations, 3, true, false, nil)
	require.NoError(t, err)
	assert.Equal(t, NoOp, d.Action)
}

func TestDecide_Upscale_MissingOriginalCountIsUserInputError(t *testing.T) {
	annotations := map[string]string{resource.AnnotationDownscaled: "true"}
	_, err := Decide(config.KindDeployment, annotations, 0, true, true, nil)
	require.Error(t, err)
}

func TestApply_DownscaleSuccess_IncrementsMetrics(t *testing.T) {
	clientset := fake.NewSimpleClientset(&appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "kuber1"},
		Spec:       appsv1.DeploymentSpec{Replicas: int32Ptr(3)},
	})
	registry := resource.NewRegistry()
	adapter := registry[config.KindDeployment]

	obj := resource.Object{Kind: config.KindDeployment, Namespace: "kuber1", Name: "api"}
	decision := Decision{Action: Downscale, Annotations: resource.BuildAnnotations(3, true), Target: 0}

	metrics := &fakeMetrics{}
	err := Apply(context.Background(), clientset, adapter, obj, decision, metrics)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.downSuccess)
	assert.Equal(t, 0, metrics.downFailure)
}

func TestApply_PatchFailure_IncrementsFailureMetric(t *testing.T) {
	clientset := fake.NewSimpleClientset() // no deployment named "missing"
	registry := resource.NewRegistry()
	adapter := registry[config.KindDeployment]

	obj := resource.Object{Kind: config.KindDeployment, Namespace: "kuber1", Name: "missing"}
	decision := Decision{Action: Downscale, Annotations: resource.BuildAnnotations(0, true), Target: 0}

	metrics := &fakeMetrics{}
	err := Apply(context.Background(), clientset, adapter, obj, decision, metrics)
	require.Error(t, err)
	assert.Equal(t, 1, metrics.downFailure)
}

func TestApply_NoOp_DoesNotPatchOrCount(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	registry := resource.NewRegistry()
	adapter := registry[config.KindDeployment]

	metrics := &fakeMetrics{}
	err := Apply(context.Background(), clientset, adapter, resource.Object{}, Decision{Action: NoOp}, metrics)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.downSuccess+metrics.downFailure+metrics.upSuccess+metrics.upFailure)
}

func TestProcessKind_MatchesAndDownscales(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&appsv1.Deployment{
			ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "kuber1", Labels: map[string]string{"env": "sit"}},
			Spec:       appsv1.DeploymentSpec{Replicas: int32Ptr(3)},
		},
		&appsv1.Deployment{
			ObjectMeta: metav1.ObjectMeta{Name: "other", Namespace: "kuber1", Labels: map[string]string{"env": "prod"}},
			Spec:       appsv1.DeploymentSpec{Replicas: int32Ptr(3)},
		},
	)
	registry := resource.NewRegistry()
	metrics := &fakeMetrics{}

	results, err := ProcessKind(context.Background(), clientset, registry, config.KindDeployment, "kuber1", "rule-1", "metadata.labels.env=='sit'", false, nil, true, metrics)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "api", results[0].Name)
	assert.Equal(t, Downscale, results[0].Action)
	assert.Equal(t, 1, metrics.downSuccess)
}

func TestProcessNamespaceFanOut_PinsHPABeforeDeployment(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "team-a", Labels: map[string]string{"scale": "true"}}},
		&appsv1.Deployment{
			ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "team-a"},
			Spec:       appsv1.DeploymentSpec{Replicas: int32Ptr(3)},
		},
	)
	registry := resource.NewRegistry()
	metrics := &fakeMetrics{}

	results, err := ProcessNamespaceFanOut(context.Background(), clientset, registry, "rule-1", "metadata.labels.scale=='true'", false, nil, metrics)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, config.KindDeployment, results[0].Kind)
	assert.Equal(t, "team-a", results[0].Namespace)
}

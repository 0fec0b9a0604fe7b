package resource

import (
	"context"
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	autoscalingv2 "k8s.io/api/autoscaling/v2"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(n int32) *int32 { return &n }

func TestDeploymentAdapter_ListAndPatch(t *testing.T) {
	clientset := fake.NewSimpleClientset(&appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "kuber1"},
		Spec:       appsv1.DeploymentSpec{Replicas: int32Ptr(3)},
	})

	a := &deploymentAdapter{}
	objs, err := a.List(context.Background(), clientset, "kuber1")
	require.NoError(t, err)
	require.Len(t, objs, 1)

	count, ok := a.NativeCount(objs[0])
	require.True(t, ok)
	assert.EqualValues(t, 3, count)

	err = a.Patch(context.Background(), clientset, "kuber1", "api", BuildAnnotations(3, true), 0, true)
	require.NoError(t, err)

	got, err := clientset.AppsV1().Deployments("kuber1").Get(context.Background(), "api", metav1.GetOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, *got.Spec.Replicas)
	assert.Equal(t, "true", got.Annotations[AnnotationDownscaled])
	assert.Equal(t, "3", got.Annotations[AnnotationOriginalCount])
	assert.Equal(t, "disabled", got.Annotations[AnnotationFluxReconcile])
}

func TestHPAAdapter_ClampsMinReplicasToOne(t *testing.T) {
	clientset := fake.NewSimpleClientset(&autoscalingv2.HorizontalPodAutoscaler{
		ObjectMeta: metav1.ObjectMeta{Name: "api-hpa", Namespace: "kuber1"},
		Spec:       autoscalingv2.HorizontalPodAutoscalerSpec{MinReplicas: int32Ptr(5)},
	})

	a := &hpaAdapter{}
	err := a.Patch(context.Background(), clientset, "kuber1", "api-hpa", BuildAnnotations(5, true), 0, true)
	require.NoError(t, err)

	got, err := clientset.AutoscalingV2().HorizontalPodAutoscalers("kuber1").Get(context.Background(), "api-hpa", metav1.GetOptions{})
	require.NoError(t, err)
	require.NotNil(t, got.Spec.MinReplicas)
	assert.EqualValues(t, 1, *got.Spec.MinReplicas)
}

func TestCronJobAdapter_SuspendInsteadOfReplicas(t *testing.T) {
	clientset := fake.NewSimpleClientset(&batchv1.CronJob{
		ObjectMeta: metav1.ObjectMeta{Name: "nightly", Namespace: "kuber1"},
	})

	a := &cronJobAdapter{}
	objs, err := a.List(context.Background(), clientset, "kuber1")
	require.NoError(t, err)
	require.Len(t, objs, 1)

	_, ok := a.NativeCount(objs[0])
	assert.False(t, ok)

	err = a.Patch(context.Background(), clientset, "kuber1", "nightly", BuildAnnotations(0, true), 0, true)
	require.NoError(t, err)

	got, err := clientset.BatchV1().CronJobs("kuber1").Get(context.Background(), "nightly", metav1.GetOptions{})
	require.NoError(t, err)
	require.True(t, got.Spec.Suspend != nil && *got.Spec.Suspend)
}

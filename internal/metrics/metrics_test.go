package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters_IncrementIndependently(t *testing.T) {
	c := NewCounters()

	c.IncScaleUpSuccess()
	c.IncScaleUpSuccess()
	c.IncScaleDownFailure()

	assert.Equal(t, float64(2), testutil.ToFloat64(c.scaleUpSuccess))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.scaleUpFailure))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.scaleDownFailure))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.scaleDownSuccess))
}

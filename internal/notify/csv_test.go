package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/engine"
)

func TestBuildCSV_HeaderAndRows(t *testing.T) {
	results := []engine.Result{
		{RuleID: "rule-1", Kind: config.KindDeployment, Namespace: "kuber1", Name: "api", Action: engine.Downscale},
		{RuleID: "rule-1", Kind: config.KindHPA, Namespace: "kuber1", Name: "api-hpa", Action: engine.Upscale},
	}

	out, err := BuildCSV(results)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "rule,kind,namespace,name,action", lines[0])
	assert.Equal(t, "rule-1,Deployment,kuber1,api,downscale", lines[1])
	assert.Equal(t, "rule-1,HPA,kuber1,api-hpa,upscale", lines[2])
}

func TestBuildCSV_Empty(t *testing.T) {
	out, err := BuildCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "rule,kind,namespace,name,action\n", string(out))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
rules:
  - id: rules-downscale-kuber1
    uptime: "Mon-Fri 07:00-19:00 Australia/Sydney"
    jmespath: "metadata.namespace == 'kuber1'"
    resource: [Namespace]
    replicas: 0
  - id: rules-downscale-hpa
    uptime: "Mon-Fri 07:00-19:00 Australia/Sydney"
    jmespath: "metadata.name == 'api'"
    resource: [hpa]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, "rules-downscale-kuber1", rs.Rules[0].ID)
	require.NotNil(t, rs.Rules[0].Replicas)
	assert.EqualValues(t, 0, *rs.Rules[0].Replicas)

	kinds, err := rs.Rules[1].Kinds()
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindHPA}, kinds)
}

func TestLoad_MissingFileIsIOError(t *testing.T) {
	_, err := Load("/nonexistent/rules.yaml")
	require.Error(t, err)
}

func TestParseKind_CaseAndPluralInsensitive(t *testing.T) {
	for _, s := range []string{"Deployment", "deployments", "DEPLOYMENT"} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, KindDeployment, k)
	}
}

func TestParseKind_Unsupported(t *testing.T) {
	_, err := ParseKind("Pod")
	require.Error(t, err)
}

package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: quick_fib
description: "sanity run"
workload: fib_loop
param: 30
iterations: 10
verify: true
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "quick_fib", s.Name)
	assert.Equal(t, "sanity run", s.Description)
	assert.Equal(t, "fib_loop", s.Workload)
	require.NotNil(t, s.Param)
	assert.Equal(t, int32(30), *s.Param)
	assert.Equal(t, 10, s.Iterations)
	assert.True(t, s.Verify)

	req := s.Request()
	assert.Equal(t, "fib_loop", req.Workload)
	assert.Equal(t, int32(30), *req.Param)
	assert.Equal(t, 10, req.Iterations)
	assert.True(t, req.Verify)
}

func TestLoadScenario_OmittedParamStaysNil(t *testing.T) {
	path := writeScenario(t, `
name: defaults
workload: sieve
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Nil(t, s.Param, "omitted param must defer to the registered default")
	assert.Equal(t, 0, s.Iterations)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenario(t, `workload: gcd`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_MissingWorkload(t *testing.T) {
	path := writeScenario(t, `name: incomplete`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload is required")
}

func TestLoadScenario_UnknownFieldRejected(t *testing.T) {
	path := writeScenario(t, `
name: typo
workload: gcd
iteratons: 5
`)

	_, err := LoadScenario(path)
	require.Error(t, err, "strict decoding must reject unknown fields")
}

func TestEntryRequest_ZeroParamUsesDefault(t *testing.T) {
	e := &Entry{Workload: "mfr", Iterations: 3}
	req := e.Request()
	assert.Nil(t, req.Param)
	assert.Equal(t, 3, req.Iterations)

	e = &Entry{Workload: "mfr", Param: 5}
	req = e.Request()
	require.NotNil(t, req.Param)
	assert.Equal(t, int32(5), *req.Param)
}

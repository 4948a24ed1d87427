package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchlab/sightline/internal/store"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestList_TextGolden(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "list", []byte(out))
}

func TestList_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "list")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	items, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, items, 8)
}

func TestRun_TextOutput(t *testing.T) {
	out, err := execute(t, "run", "fib_loop", "-n", "3", "--verify")
	require.NoError(t, err)

	assert.Contains(t, out, "fib_loop(param=30) x3")
	assert.Contains(t, out, "832,040")
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "run", "nqueens", "-n", "2")
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   RunReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "nqueens", resp.Data.Workload)
	assert.Equal(t, int32(4600), resp.Data.Checksum)
	assert.Equal(t, 2, resp.Data.Iterations)
	assert.Equal(t, 2, resp.Data.Samples)
	assert.NotEmpty(t, resp.Data.RunID)
	assert.False(t, resp.Data.Recorded)
}

func TestRun_ParamOverride(t *testing.T) {
	out, err := execute(t, "run", "fib_loop", "--param", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "param=10")
	assert.Contains(t, out, "55")
}

func TestRun_UnknownWorkload(t *testing.T) {
	_, err := execute(t, "run", "warp_drive")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRun_RecordsAndReports(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	out, err := execute(t, "run", "gcd", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "recorded")

	report, err := execute(t, "report", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, report, "gcd")
	assert.Contains(t, report, "param=1000")
}

func TestReport_MissingDatabase(t *testing.T) {
	_, err := execute(t, "report", "--db", "/nonexistent/results.db")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReport_TableGolden(t *testing.T) {
	runs := []store.Run{
		{
			ID:         "0194aaaa-0000-7000-8000-000000000001",
			Workload:   "fib_loop",
			Param:      30,
			Iterations: 100,
			MeanNS:     1234567,
			TotalNS:    123456700,
			StartedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "0194aaaa-0000-7000-8000-000000000002",
			Workload:   "sieve",
			Param:      10000,
			Iterations: 5,
			MeanNS:     999,
			TotalNS:    4995,
			StartedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	buf := &bytes.Buffer{}
	writeRunTable(buf, runs)
	newGoldie(t).Assert(t, "report", buf.Bytes())
}

func TestReport_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	writeRunTable(buf, nil)
	assert.Equal(t, "no recorded runs\n", buf.String())
}

// writeSuiteDir drops a CUE suite definition into a temp dir.
func writeSuiteDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suites.cue"), []byte(content), 0644))
	return dir
}

func TestValidate_ValidSuites(t *testing.T) {
	dir := writeSuiteDir(t, `
suite: quick: {
	entries: [
		{workload: "fib_loop", iterations: 2},
		{workload: "gcd"},
	]
}
`)

	out, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestValidate_UnknownWorkload(t *testing.T) {
	dir := writeSuiteDir(t, `
suite: broken: {
	entries: [{workload: "hyperloop"}]
}
`)

	out, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "hyperloop")
}

func TestValidate_MissingDir(t *testing.T) {
	_, err := execute(t, "validate", "/nonexistent/suites")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSuite_RunsEntries(t *testing.T) {
	dir := writeSuiteDir(t, `
suite: quick: {
	description: "fast sanity pass"
	entries: [
		{workload: "fib_loop", iterations: 2, verify: true},
		{workload: "nqueens", iterations: 1, verify: true},
	]
}
`)

	out, err := execute(t, "suite", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "suite quick")
	assert.Contains(t, out, "fib_loop")
	assert.Contains(t, out, "nqueens")
	assert.Contains(t, out, "ok")
}

func TestSuite_OnlyFilter(t *testing.T) {
	dir := writeSuiteDir(t, `
suite: {
	a: {entries: [{workload: "gcd"}]}
	b: {entries: [{workload: "mfr"}]}
}
`)

	out, err := execute(t, "suite", dir, "--only", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "suite a")
	assert.NotContains(t, out, "suite b")
}

func TestSuite_OnlyUnknownSuite(t *testing.T) {
	dir := writeSuiteDir(t, `
suite: a: {entries: [{workload: "gcd"}]}
`)

	_, err := execute(t, "suite", dir, "--only", "nosuch")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "nosuch")
}

func TestSuite_InvalidRefusesToRun(t *testing.T) {
	dir := writeSuiteDir(t, `
suite: broken: {
	entries: [{workload: "hyperloop"}]
}
`)

	_, err := execute(t, "suite", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCheck_Passes(t *testing.T) {
	if testing.Short() {
		t.Skip("differential timing check skipped in short mode")
	}

	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "escape barrier ok")
}

func TestExitError_Codes(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))

	wrapped := WrapExitError(ExitCommandError, "context", assert.AnError)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Contains(t, wrapped.Error(), "context")
}

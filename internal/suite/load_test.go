package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSuiteFile drops CUE content into a fresh directory.
func writeSuiteFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suites.cue"), []byte(content), 0644))
	return dir
}

func TestLoadDir_ValidSuite(t *testing.T) {
	dir := writeSuiteFile(t, `
suite: shootout: {
	description: "classic shootout bodies"
	entries: [
		{workload: "fib_loop", param: 30, iterations: 100},
		{workload: "sieve", iterations: 10, verify: true},
	]
}
`)

	result, errs := LoadDir(dir, LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.FileCount)

	require.Len(t, result.Suites, 1)
	s := result.Suites[0]
	assert.Equal(t, "shootout", s.Name)
	assert.Equal(t, "classic shootout bodies", s.Description)

	require.Len(t, s.Entries, 2)
	assert.Equal(t, Entry{Workload: "fib_loop", Param: 30, Iterations: 100}, s.Entries[0])
	assert.Equal(t, Entry{Workload: "sieve", Iterations: 10, Verify: true}, s.Entries[1])
}

func TestLoadDir_MultipleSuites(t *testing.T) {
	dir := writeSuiteFile(t, `
suite: {
	quick: {
		entries: [{workload: "gcd"}]
	}
	full: {
		entries: [{workload: "gcd"}, {workload: "mfr"}]
	}
}
`)

	result, errs := LoadDir(dir, LoadModeCollectAll)
	require.Empty(t, errs)
	require.Len(t, result.Suites, 2)
}

func TestLoadDir_DirectoryNotFound(t *testing.T) {
	_, errs := LoadDir("/nonexistent/suites", LoadModeFailFast)
	require.Len(t, errs, 1)

	var se *Error
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, ErrCodeNotFound, se.Code)
}

func TestLoadDir_NoCUEFiles(t *testing.T) {
	dir := t.TempDir()

	_, errs := LoadDir(dir, LoadModeFailFast)
	require.Len(t, errs, 1)

	var se *Error
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, ErrCodeNoFiles, se.Code)
}

func TestLoadDir_MissingSuiteStruct(t *testing.T) {
	dir := writeSuiteFile(t, `other: {x: 1}`)

	_, errs := LoadDir(dir, LoadModeFailFast)
	require.Len(t, errs, 1)

	var se *Error
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, ErrCodeBadField, se.Code)
}

func TestLoadDir_MissingWorkloadField(t *testing.T) {
	dir := writeSuiteFile(t, `
suite: broken: {
	entries: [{param: 5}]
}
`)

	_, errs := LoadDir(dir, LoadModeFailFast)
	require.Len(t, errs, 1)

	var se *Error
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, ErrCodeBadField, se.Code)
	assert.Contains(t, se.Message, "workload is required")
}

func TestLoadDir_ParamOutOfInt32Range(t *testing.T) {
	// 2^32+30 would wrap to fib_loop's default param if narrowed blindly,
	// sailing through validation and even checksum verification.
	dir := writeSuiteFile(t, `
suite: broken: {
	entries: [{workload: "fib_loop", param: 4294967326, iterations: 1}]
}
`)

	result, errs := LoadDir(dir, LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Empty(t, result.Suites)

	var se *Error
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, ErrCodeBadParam, se.Code)
	assert.Contains(t, se.Message, "4294967326")
}

func TestLoadDir_WrongFieldType(t *testing.T) {
	dir := writeSuiteFile(t, `
suite: broken: {
	entries: [{workload: "gcd", iterations: "ten"}]
}
`)

	_, errs := LoadDir(dir, LoadModeFailFast)
	require.Len(t, errs, 1)

	var se *Error
	require.ErrorAs(t, errs[0], &se)
	assert.Equal(t, ErrCodeBadField, se.Code)
}

func TestLoadDir_CollectAllKeepsGoodSuites(t *testing.T) {
	dir := writeSuiteFile(t, `
suite: {
	bad: {
		entries: [{param: 1}]
	}
	good: {
		entries: [{workload: "fib_loop"}]
	}
}
`)

	result, errs := LoadDir(dir, LoadModeCollectAll)
	assert.Len(t, errs, 1)
	require.Len(t, result.Suites, 1)
	assert.Equal(t, "good", result.Suites[0].Name)
}

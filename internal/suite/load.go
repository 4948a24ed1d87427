package suite

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// LoadMode controls how errors are handled during suite loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the results of loading suites from a directory.
type LoadResult struct {
	Suites    []Suite
	FileCount int // Number of CUE files found
}

// LoadDir loads suite definitions from every .cue file in dir.
//
// Suites live under the top-level "suite" struct, one field per suite:
//
//	suite: shootout: {
//		description: "classic shootout bodies"
//		entries: [
//			{workload: "fib_loop", param: 30, iterations: 100},
//		]
//	}
func LoadDir(dir string, mode LoadMode) (*LoadResult, []error) {
	var errs []error

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&Error{Code: ErrCodeNotFound, Message: fmt.Sprintf("suite directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&Error{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing suite directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&Error{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&Error{Code: ErrCodeGeneric, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&Error{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir, Package: "_"}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&Error{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&Error{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&Error{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &LoadResult{FileCount: len(cueFiles)}

	suitesVal := value.LookupPath(cue.ParsePath("suite"))
	if !suitesVal.Exists() {
		return result, []error{&Error{Code: ErrCodeBadField, Message: `no top-level "suite" struct found`, Pos: value.Pos()}}
	}

	iter, iterErr := suitesVal.Fields()
	if iterErr != nil {
		return result, []error{&Error{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating suites: %v", iterErr)}}
	}
	for iter.Next() {
		s, parseErr := parseSuite(iter.Label(), iter.Value())
		if parseErr != nil {
			errs = append(errs, parseErr)
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		result.Suites = append(result.Suites, *s)
	}

	if len(result.Suites) == 0 && len(errs) == 0 {
		errs = append(errs, &Error{Code: ErrCodeBadField, Message: "no suites found"})
	}

	return result, errs
}

// parseSuite parses one suite struct.
func parseSuite(name string, v cue.Value) (*Suite, error) {
	if err := v.Err(); err != nil {
		return nil, &Error{Code: ErrCodeBuildFailed, Message: err.Error(), Pos: v.Pos()}
	}

	s := &Suite{Name: name}

	descVal := v.LookupPath(cue.ParsePath("description"))
	if descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return nil, &Error{Code: ErrCodeBadField, Message: "description must be a string", Pos: descVal.Pos()}
		}
		s.Description = desc
	}

	entriesVal := v.LookupPath(cue.ParsePath("entries"))
	if !entriesVal.Exists() {
		return nil, &Error{Code: ErrCodeBadField, Message: "entries is required", Pos: v.Pos()}
	}

	list, err := entriesVal.List()
	if err != nil {
		return nil, &Error{Code: ErrCodeBadField, Message: "entries must be a list", Pos: entriesVal.Pos()}
	}
	for list.Next() {
		entry, entryErr := parseEntry(list.Value())
		if entryErr != nil {
			return nil, entryErr
		}
		s.Entries = append(s.Entries, *entry)
	}

	return s, nil
}

// parseEntry parses one {workload, param, iterations, verify} struct.
func parseEntry(v cue.Value) (*Entry, error) {
	entry := &Entry{}

	wlVal := v.LookupPath(cue.ParsePath("workload"))
	if !wlVal.Exists() {
		return nil, &Error{Code: ErrCodeBadField, Message: "workload is required", Pos: v.Pos()}
	}
	wl, err := wlVal.String()
	if err != nil {
		return nil, &Error{Code: ErrCodeBadField, Message: "workload must be a string", Pos: wlVal.Pos()}
	}
	entry.Workload = wl

	if paramVal := v.LookupPath(cue.ParsePath("param")); paramVal.Exists() {
		p, err := paramVal.Int64()
		if err != nil {
			return nil, &Error{Code: ErrCodeBadField, Message: "param must be an integer", Pos: paramVal.Pos()}
		}
		if p < math.MinInt32 || p > math.MaxInt32 {
			return nil, &Error{Code: ErrCodeBadParam, Message: fmt.Sprintf("param %d out of range for int32", p), Pos: paramVal.Pos()}
		}
		entry.Param = int32(p)
	}

	if itersVal := v.LookupPath(cue.ParsePath("iterations")); itersVal.Exists() {
		n, err := itersVal.Int64()
		if err != nil {
			return nil, &Error{Code: ErrCodeBadField, Message: "iterations must be an integer", Pos: itersVal.Pos()}
		}
		entry.Iterations = int(n)
	}

	if verifyVal := v.LookupPath(cue.ParsePath("verify")); verifyVal.Exists() {
		b, err := verifyVal.Bool()
		if err != nil {
			return nil, &Error{Code: ErrCodeBadField, Message: "verify must be a bool", Pos: verifyVal.Pos()}
		}
		entry.Verify = b
	}

	return entry, nil
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

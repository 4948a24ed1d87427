package suite

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benchlab/sightline/internal/runner"
)

// Scenario is a single run request in file form.
type Scenario struct {
	// Name identifies the scenario. Required.
	Name string `yaml:"name"`

	// Description explains what the scenario measures.
	Description string `yaml:"description,omitempty"`

	// Workload names a registered workload. Required.
	Workload string `yaml:"workload"`

	// Param is the workload parameter; omit for the registered default.
	Param *int32 `yaml:"param,omitempty"`

	// Iterations is the execution count. Omitted means 1.
	Iterations int `yaml:"iterations,omitempty"`

	// Verify enforces the registered checksum.
	Verify bool `yaml:"verify,omitempty"`
}

// LoadScenario reads and strictly decodes a scenario YAML file.
// Unknown fields are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if s.Workload == "" {
		return nil, fmt.Errorf("scenario %s: workload is required", path)
	}

	return &s, nil
}

// Request converts the scenario into the runner's request form.
func (s *Scenario) Request() runner.Request {
	return runner.Request{
		Workload:   s.Workload,
		Param:      s.Param,
		Iterations: s.Iterations,
		Verify:     s.Verify,
	}
}

// Request converts a suite entry into the runner's request form.
func (e *Entry) Request() runner.Request {
	req := runner.Request{
		Workload:   e.Workload,
		Iterations: e.Iterations,
		Verify:     e.Verify,
	}
	if e.Param != 0 {
		p := e.Param
		req.Param = &p
	}
	return req
}

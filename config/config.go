// SPDX-License-Identifier: MIT

// Package config loads and validates the YAML run files consumed by
// `bnet run`.
//
// Example:
//
//	model: alarm
//	query: Burglary
//	evidence:
//	  JohnCalls: "true"
//	  MaryCalls: "true"
//	ordering: min-weight
//	workers: 4
//	timeout: 5s
//	verify: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbayes/ordering"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid run configuration")

// Defaults applied to omitted fields.
const (
	DefaultOrdering = ordering.NameMinFill
	DefaultWorkers  = 1
)

// Run describes one inference query.
type Run struct {
	// Model names a catalog network (see models.Names).
	Model string `yaml:"model" validate:"required"`

	// Query is the variable whose posterior is computed.
	Query string `yaml:"query" validate:"required"`

	// Evidence maps variable names to observed values, written as their
	// display text (e.g. "true", "1", "yes").
	Evidence map[string]string `yaml:"evidence" validate:"omitempty,dive,keys,required,endkeys,required"`

	// Ordering selects a named heuristic. Ignored when Order is set.
	Ordering string `yaml:"ordering" validate:"oneof=min-fill min-weight"`

	// Order fixes the elimination order by variable name; variables left out
	// are appended in first-seen order.
	Order []string `yaml:"order" validate:"omitempty,unique,dive,required"`

	// Workers per elimination step; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0,lte=1024"`

	// Timeout bounds the query; 0 disables it.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	// Verify cross-checks the result against brute-force enumeration.
	Verify bool `yaml:"verify"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses the file at path.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Parse decodes YAML strictly (unknown keys are errors), applies defaults and
// validates the result.
func Parse(data []byte) (*Run, error) {
	r := &Run{Workers: -1}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	r.applyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// applyDefaults fills omitted fields. Workers starts at -1 so an explicit 0
// (all CPUs) survives.
func (r *Run) applyDefaults() {
	if r.Ordering == "" {
		r.Ordering = DefaultOrdering
	}
	if r.Workers < 0 {
		r.Workers = DefaultWorkers
	}
}

// Validate checks field constraints.
func (r *Run) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s fails %q (got %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// EvidenceNames returns the observed variable names sorted, so evidence is
// applied in a stable order.
func (r *Run) EvidenceNames() []string {
	out := make([]string, 0, len(r.Evidence))
	for name := range r.Evidence {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// SPDX-License-Identifier: MIT

package models

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbayes/network"
)

// ErrUnknownModel is returned by Build for a name not in the catalog.
var ErrUnknownModel = errors.New("models: unknown model")

// Model describes one built-in network.
type Model struct {
	Name        string
	Description string
	Build       func() (*network.BayesNet, error)
}

var catalog = []Model{
	{Name: "chain", Description: "A → B → C over {0, 1}", Build: Chain},
	{Name: "sprinkler", Description: "Cloudy, Sprinkler, Rain → WetGrass", Build: Sprinkler},
	{Name: "alarm", Description: "burglary alarm with two callers", Build: Alarm},
	{Name: "asia-lite", Description: "chest clinic without bronchitis/dyspnoea, yes/no domains", Build: AsiaLite},
}

// Catalog returns the built-in models in display order.
func Catalog() []Model {
	return append([]Model(nil), catalog...)
}

// Names lists the catalog names.
func Names() []string {
	out := make([]string, len(catalog))
	for i, m := range catalog {
		out[i] = m.Name
	}

	return out
}

// Build constructs the named model. Every call returns fresh variables.
func Build(name string) (*network.BayesNet, error) {
	for _, m := range catalog {
		if m.Name == name {
			return m.Build()
		}
	}

	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownModel, name, Names())
}

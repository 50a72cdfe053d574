// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package clade

import (
	"fmt"
	"slices"
)

// Rule names defined in a new entry.
const (
	DefaultRule  = "default"
	ProbableRule = "Probable"
)

// A Rule is a pair of detection thresholds
// for a clade.
type Rule struct {
	MinAlt string `json:"min_alt" yaml:"min_alt"`
	MaxRef string `json:"max_ref" yaml:"max_ref"`
}

// An Entry is the definition of a clade
// in a clade catalog.
type Entry struct {
	Label       string          `json:"label" yaml:"label"`
	Description string          `json:"description" yaml:"description"`
	Sources     []string        `json:"sources" yaml:"sources"`
	Tags        []string        `json:"tags" yaml:"tags"`
	Sites       []string        `json:"sites" yaml:"sites"`
	Note        string          `json:"note" yaml:"note"`
	Rules       map[string]Rule `json:"rules" yaml:"rules"`
}

// NewEntry returns a catalog entry
// for a clade with the given defining sites.
// Duplicated sites are removed.
func NewEntry(label string, sites []string) Entry {
	s := slices.Clone(sites)
	slices.Sort(s)
	s = slices.Compact(s)
	if s == nil {
		s = []string{}
	}

	return Entry{
		Label:       label,
		Description: fmt.Sprintf("%s defining mutations", label),
		Sources:     []string{},
		Tags:        []string{label},
		Sites:       s,
		Note:        "Unique mutations for sublineage",
		Rules: map[string]Rule{
			DefaultRule:  {},
			ProbableRule: {},
		},
	}
}

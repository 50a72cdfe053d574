// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"

	"github.com/js-arias/cladedef/catalog"
	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/nextstrain"
)

// Tree reads the phylogenetic tree
// as defined in a project.
func (p *Project) Tree(opts nextstrain.Options) (*clade.Node, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}
	return nextstrain.ReadFile(name, opts)
}

// Catalog returns the clade catalog
// as defined in a project.
// New documents will be written
// using the given format.
func (p *Project) Catalog(format catalog.Format) (*catalog.Dir, error) {
	name := p.Path(Catalog)
	if name == "" {
		return nil, fmt.Errorf("catalog not defined in project %q", p.name)
	}
	return catalog.Open(name, format), nil
}

// Labels reads the list of clade labels
// as defined in a project.
func (p *Project) Labels() ([]string, error) {
	name := p.Path(Labels)
	if name == "" {
		return nil, fmt.Errorf("labels not defined in project %q", p.name)
	}
	return catalog.ReadLabelsFile(name)
}

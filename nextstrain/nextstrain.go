// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nextstrain implements reading of phylogenetic trees
// exported by Nextstrain
// (Auspice v2 JSON files).
package nextstrain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/cladedef/clade"
)

// Default values for reading options.
const (
	// DefaultAttr is the node attribute
	// that stores the clade label.
	DefaultAttr = "clade_membership"

	// DefaultGene is the key of the branch mutations
	// used for nucleotide substitutions.
	DefaultGene = "nuc"
)

// ErrNoTree is returned when the document
// does not have a tree.
var ErrNoTree = errors.New("tree not found")

// Options are the options used to read a tree.
type Options struct {
	// Attr is the node attribute used as the clade label.
	// If empty, DefaultAttr will be used.
	Attr string

	// Gene is the mutation set read from each branch.
	// If empty, DefaultGene will be used.
	Gene string
}

type jsonDoc struct {
	Tree *jsonNode `json:"tree"`
}

type jsonNode struct {
	Name        string                     `json:"name"`
	NodeAttrs   map[string]json.RawMessage `json:"node_attrs"`
	BranchAttrs struct {
		Mutations map[string][]string `json:"mutations"`
	} `json:"branch_attrs"`
	Children []*jsonNode `json:"children"`
}

type jsonAttr struct {
	Value json.RawMessage `json:"value"`
}

// Read reads a tree from an Auspice JSON document.
//
// The label of each node is read from
// node_attrs.<attr>.value,
// and the mutations from
// branch_attrs.mutations.<gene>.
// Missing attributes are ignored.
func Read(r io.Reader, opts Options) (*clade.Node, error) {
	if opts.Attr == "" {
		opts.Attr = DefaultAttr
	}
	if opts.Gene == "" {
		opts.Gene = DefaultGene
	}

	var doc jsonDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("while decoding tree: %v", err)
	}
	if doc.Tree == nil {
		return nil, ErrNoTree
	}

	root, err := convert(doc.Tree, opts)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ReadFile reads a tree from an Auspice JSON file.
func ReadFile(name string, opts Options) (*clade.Node, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return root, nil
}

func convert(jn *jsonNode, opts Options) (*clade.Node, error) {
	type pair struct {
		jn *jsonNode
		n  *clade.Node
	}

	root := &clade.Node{}
	stack := []pair{{jn: jn, n: root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		l, err := label(p.jn.NodeAttrs, opts.Attr)
		if err != nil {
			return nil, fmt.Errorf("node %q: %v", p.jn.Name, err)
		}
		p.n.Label = l
		p.n.Mutations = p.jn.BranchAttrs.Mutations[opts.Gene]

		for _, c := range p.jn.Children {
			if c == nil {
				continue
			}
			n := &clade.Node{}
			p.n.Children = append(p.n.Children, n)
			stack = append(stack, pair{jn: c, n: n})
		}
	}
	return root, nil
}

func label(attrs map[string]json.RawMessage, attr string) (string, error) {
	raw, ok := attrs[attr]
	if !ok {
		return "", nil
	}

	var a jsonAttr
	if err := json.Unmarshal(raw, &a); err != nil {
		return "", fmt.Errorf("attribute %q: %v", attr, err)
	}
	v := bytes.TrimSpace(a.Value)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, nil
	}
	return string(v), nil
}

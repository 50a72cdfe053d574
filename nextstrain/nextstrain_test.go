// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package nextstrain_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/nextstrain"
)

var treeJSON = `{
	"version": "v2",
	"meta": {"title": "test tree"},
	"tree": {
		"name": "NODE_0000001",
		"node_attrs": {"div": 0},
		"branch_attrs": {"mutations": {"nuc": ["G3A"]}},
		"children": [
			{
				"name": "C1",
				"node_attrs": {
					"clade_membership": {"value": "clade1"},
					"subclade": {"value": "J.1"}
				},
				"branch_attrs": {"mutations": {"nuc": ["A10T"], "HA1": ["K160T"]}}
			},
			{
				"name": "C2",
				"node_attrs": {"clade_membership": {"value": null}},
				"branch_attrs": {"mutations": {"nuc": ["C7G"]}},
				"children": [
					{
						"name": "C2a",
						"node_attrs": {
							"clade_membership": {"value": "clade1"},
							"subclade": {"value": 2}
						},
						"branch_attrs": {"mutations": {"nuc": ["T2A"], "HA1": ["N145S"]}},
						"children": []
					}
				]
			}
		]
	}
}`

func TestRead(t *testing.T) {
	root, err := nextstrain.Read(strings.NewReader(treeJSON), nextstrain.Options{})
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	want := &clade.Node{
		Mutations: []string{"G3A"},
		Children: []*clade.Node{
			{Label: "clade1", Mutations: []string{"A10T"}},
			{
				Mutations: []string{"C7G"},
				Children: []*clade.Node{
					{Label: "clade1", Mutations: []string{"T2A"}},
				},
			},
		},
	}
	if !reflect.DeepEqual(root, want) {
		t.Errorf("tree: got %+v, want %+v", root, want)
	}

	ms := clade.Mutations(root, "clade1")
	wantMs := []string{"A10T", "C7G", "G3A", "T2A"}
	if !reflect.DeepEqual(ms, wantMs) {
		t.Errorf("mutations: got %v, want %v", ms, wantMs)
	}
}

func TestReadOptions(t *testing.T) {
	opts := nextstrain.Options{
		Attr: "subclade",
		Gene: "HA1",
	}
	root, err := nextstrain.Read(strings.NewReader(treeJSON), opts)
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	labels := clade.Labels(root)
	want := []string{"2", "J.1"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels: got %v, want %v", labels, want)
	}

	ms := clade.Mutations(root, "J.1")
	wantMs := []string{"K160T", "N145S"}
	if !reflect.DeepEqual(ms, wantMs) {
		t.Errorf("mutations: got %v, want %v", ms, wantMs)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]struct {
		doc    string
		noTree bool
	}{
		"no tree":       {doc: `{"meta": {}}`, noTree: true},
		"null tree":     {doc: `{"tree": null}`, noTree: true},
		"bad json":      {doc: `{"tree": `},
		"bad attr":      {doc: `{"tree": {"node_attrs": {"clade_membership": "3C"}}}`},
		"bad mutations": {doc: `{"tree": {"branch_attrs": {"mutations": {"nuc": "A1G"}}}}`},
	}

	for name, test := range tests {
		_, err := nextstrain.Read(strings.NewReader(test.doc), nextstrain.Options{})
		if err == nil {
			t.Errorf("%s: expecting error", name)
			continue
		}
		if test.noTree && !errors.Is(err, nextstrain.ErrNoTree) {
			t.Errorf("%s: got error %v, want %v", name, err, nextstrain.ErrNoTree)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "tree.json")
	if err := os.WriteFile(name, []byte(treeJSON), 0o644); err != nil {
		t.Fatalf("unable to write tree file: %v", err)
	}

	root, err := nextstrain.ReadFile(name, nextstrain.Options{})
	if err != nil {
		t.Fatalf("unable to read tree file: %v", err)
	}
	if got := clade.Labels(root); !reflect.DeepEqual(got, []string{"clade1"}) {
		t.Errorf("labels: got %v, want %v", got, []string{"clade1"})
	}

	_, err = nextstrain.ReadFile(filepath.Join(dir, "missing.json"), nextstrain.Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got error %v, want %v", err, os.ErrNotExist)
	}
}

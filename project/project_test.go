// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/cladedef/catalog"
	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/nextstrain"
	"github.com/js-arias/cladedef/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Tree, "flu_seasonal_h3n2_ha_12y.json"},
		{project.Catalog, "ha"},
		{project.Labels, "ha-labels.tab"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Labels, ""); prev != "ha-labels.tab" {
		t.Errorf("remove labels: got previous %q, want %q", prev, "ha-labels.tab")
	}
	testProject(t, np, sets[:2])
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestOpenOrNew(t *testing.T) {
	name := filepath.Join(t.TempDir(), "new.tab")
	p, err := project.OpenOrNew(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != name {
		t.Errorf("name: got %q, want %q", p.Name(), name)
	}
	if len(p.Sets()) != 0 {
		t.Errorf("sets: got %v, want none", p.Sets())
	}
}

func TestDatasets(t *testing.T) {
	dir := t.TempDir()

	treeFile := filepath.Join(dir, "tree.json")
	tree := `{"tree": {
		"branch_attrs": {"mutations": {"nuc": ["G3A"]}},
		"children": [
			{"node_attrs": {"clade_membership": {"value": "2a"}}, "branch_attrs": {"mutations": {"nuc": ["A1G"]}}}
		]
	}}`
	if err := os.WriteFile(treeFile, []byte(tree), 0o644); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}
	labelFile := filepath.Join(dir, "labels.tab")
	if err := catalog.WriteLabelsFile(labelFile, []string{"2a"}); err != nil {
		t.Fatalf("unable to write labels: %v", err)
	}

	p := project.New()
	p.SetName(filepath.Join(dir, "project.tab"))
	if _, err := p.Tree(nextstrain.Options{}); err == nil {
		t.Errorf("tree: expecting error on undefined dataset")
	}
	if _, err := p.Catalog(catalog.JSON); err == nil {
		t.Errorf("catalog: expecting error on undefined dataset")
	}
	if _, err := p.Labels(); err == nil {
		t.Errorf("labels: expecting error on undefined dataset")
	}

	p.Add(project.Tree, treeFile)
	p.Add(project.Catalog, filepath.Join(dir, "clades"))
	p.Add(project.Labels, labelFile)

	root, err := p.Tree(nextstrain.Options{})
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	if got, want := clade.Mutations(root, "2a"), []string{"A1G", "G3A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("mutations: got %v, want %v", got, want)
	}

	c, err := p.Catalog(catalog.JSON)
	if err != nil {
		t.Fatalf("unable to open catalog: %v", err)
	}
	if c.Path() != filepath.Join(dir, "clades") {
		t.Errorf("catalog: got path %q, want %q", c.Path(), filepath.Join(dir, "clades"))
	}

	ls, err := p.Labels()
	if err != nil {
		t.Fatalf("unable to read labels: %v", err)
	}
	if want := []string{"2a"}; !reflect.DeepEqual(ls, want) {
		t.Errorf("labels: got %v, want %v", ls, want)
	}
}

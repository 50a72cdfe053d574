// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a phylogenetic tree
// to a cladedef project.
package add

import (
	"fmt"

	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/nextstrain"
	"github.com/js-arias/cladedef/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `add [--attr <name>] [--gene <name>]
	<project-file> <tree-file>`,
	Short: "add a phylogenetic tree to a project",
	Long: `
Command add reads a phylogenetic tree exported by Nextstrain, and sets it as
the tree of a cladedef project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the name of the tree file. The tree is read to check
that it is a valid tree, and the number of clades and mutations found in the
tree are printed in the standard output. If the project already has a tree, it
will be replaced.

By default the clade labels are read from the "clade_membership" node
attribute. Use the flag --attr to use a different attribute. By default
nucleotide mutations ("nuc") are read; use the flag --gene to read a different
set of mutations.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var attrFlag string
var geneFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&attrFlag, "attr", nextstrain.DefaultAttr, "")
	c.Flags().StringVar(&geneFlag, "gene", nextstrain.DefaultGene, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting tree file")
	}

	p, err := project.OpenOrNew(args[0])
	if err != nil {
		return err
	}

	treeFile := args[1]
	root, err := nextstrain.ReadFile(treeFile, nextstrain.Options{
		Attr: attrFlag,
		Gene: geneFlag,
	})
	if err != nil {
		return err
	}

	ls := clade.Labels(root)
	ms := clade.Mutations(root, "")
	fmt.Fprintf(c.Stdout(), "tree %q: %d clades, %d mutations\n", treeFile, len(ls), len(ms))

	if prev := p.Add(project.Tree, treeFile); prev != "" && prev != treeFile {
		fmt.Fprintf(c.Stderr(), "WARNING: tree %q replaced by %q\n", prev, treeFile)
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

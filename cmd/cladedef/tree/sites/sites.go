// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sites implements a command to print
// the defining sites of the clades
// in the tree of a cladedef project.
package sites

import (
	"fmt"

	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/nextstrain"
	"github.com/js-arias/cladedef/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `sites [--attr <name>] [--gene <name>] [--label <label>]
	<project-file>`,
	Short: "print the defining sites of the clades",
	Long: `
Command sites reads the tree of a cladedef project and prints the defining
sites of each clade in the standard output, as a tab-delimited table with the
fields "label" and "site".

The argument of the command is the name of the project file.

The sites of a clade are the mutations found in the branches from the root of
the tree to each node of the clade (including the branch of the node). The
mutations of the descendants of a node of the clade are ignored.

By default, the sites of all the clades will be printed. If the flag --label
is set, only the sites of the indicated clade will be printed.

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
var labelFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&attrFlag, "attr", nextstrain.DefaultAttr, "")
	c.Flags().StringVar(&geneFlag, "gene", nextstrain.DefaultGene, "")
	c.Flags().StringVar(&labelFlag, "label", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	root, err := p.Tree(nextstrain.Options{
		Attr: attrFlag,
		Gene: geneFlag,
	})
	if err != nil {
		return err
	}

	ls := clade.Labels(root)
	if labelFlag != "" {
		ls = []string{labelFlag}
	}

	fmt.Fprintf(c.Stdout(), "label\tsite\n")
	for _, l := range ls {
		for _, s := range clade.Mutations(root, l) {
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", l, s)
		}
	}
	return nil
}

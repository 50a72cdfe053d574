// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package labels implements a command to print
// the clade labels of the tree of a cladedef project.
package labels

import (
	"fmt"

	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/nextstrain"
	"github.com/js-arias/cladedef/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "labels [--attr <name>] <project-file>",
	Short: "print the clade labels of a tree",
	Long: `
Command labels reads the tree of a cladedef project and prints the clade labels
declared in any node of the tree, in the standard output. The labels are
sorted.

The argument of the command is the name of the project file.

By default the clade labels are read from the "clade_membership" node
attribute. Use the flag --attr to use a different attribute.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var attrFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&attrFlag, "attr", nextstrain.DefaultAttr, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	root, err := p.Tree(nextstrain.Options{Attr: attrFlag})
	if err != nil {
		return err
	}

	for _, l := range clade.Labels(root) {
		fmt.Fprintf(c.Stdout(), "%s\n", l)
	}
	return nil
}

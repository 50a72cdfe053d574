// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/cladedef/catalog"
	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/nextstrain"
	"github.com/js-arias/cladedef/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a cladedef project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if tf := p.Path(project.Tree); tf != "" {
		if err := readTree(c.Stdout(), p); err != nil {
			return err
		}
	}

	if cf := p.Path(project.Catalog); cf != "" {
		if err := readCatalog(c.Stdout(), p); err != nil {
			return err
		}
	}

	if lf := p.Path(project.Labels); lf != "" {
		if err := readLabels(c.Stdout(), p); err != nil {
			return err
		}
	}

	return nil
}

func readTree(w io.Writer, p *project.Project) error {
	root, err := p.Tree(nextstrain.Options{})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Phylogenetic tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Tree))
	fmt.Fprintf(w, "\tclades: %d\n", len(clade.Labels(root)))
	fmt.Fprintf(w, "\tmutations: %d\n", len(clade.Mutations(root, "")))
	fmt.Fprintf(w, "\n")
	return nil
}

func readCatalog(w io.Writer, p *project.Project) error {
	cat, err := p.Catalog(catalog.JSON)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Clade catalog:\n")
	fmt.Fprintf(w, "\tdirectory: %s\n", cat.Path())
	ls, err := cat.Labels()
	if err != nil {
		fmt.Fprintf(w, "\tunable to read: %v\n", err)
	} else {
		fmt.Fprintf(w, "\tclades: %d\n", len(ls))
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func readLabels(w io.Writer, p *project.Project) error {
	ls, err := p.Labels()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Clade labels:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Labels))
	fmt.Fprintf(w, "\tlabels: %d\n", len(ls))
	fmt.Fprintf(w, "\n")
	return nil
}

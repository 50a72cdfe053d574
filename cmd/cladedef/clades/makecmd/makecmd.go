// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package makecmd implements a command to build
// the clade catalog of a cladedef project.
package makecmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/js-arias/cladedef/catalog"
	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/internal/logging"
	"github.com/js-arias/cladedef/nextstrain"
	"github.com/js-arias/cladedef/project"
	"github.com/js-arias/command"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var Command = &command.Command{
	Usage: `make [--attr <name>] [--gene <name>]
	[--dir <directory>] [--yaml] [--cpu <number>]
	[-v|--verbose] <project-file>`,
	Short: "build a clade catalog from a tree",
	Long: `
Command make reads the tree of a cladedef project and writes a document with
the definition of each clade found in the tree.

The argument of the command is the name of the project file.

The sites of a clade are the mutations found in the branches from the root of
the tree to each node of the clade. The mutations of the descendants of a node
of the clade are ignored.

By default, the documents are written in the catalog directory of the
project, or in the directory "clades" if the project does not have a catalog.
Use the flag --dir to define a different directory; the directory will be set
as the catalog of the project. Existing documents will be replaced.

By default, the documents are written as JSON files. Use the flag --yaml to
write YAML files.

The list of clade labels is written in the labels file of the project, or in a
file named after the catalog directory (for example "clades-labels.tab") if
the project does not have a labels file.

If a document can not be written, the error is reported and the remaining
clades are processed.

By default the clade labels are read from the "clade_membership" node
attribute. Use the flag --attr to use a different attribute. By default
nucleotide mutations ("nuc") are read; use the flag --gene to read a different
set of mutations.

By default, all available CPUs will be used in the processing. Set --cpu flag
to use a different number of CPUs.

Use the flag --verbose, or -v, to report each written document.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var attrFlag string
var geneFlag string
var dirFlag string
var yamlFlag bool
var numCPU int
var verboseFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&attrFlag, "attr", nextstrain.DefaultAttr, "")
	c.Flags().StringVar(&geneFlag, "gene", nextstrain.DefaultGene, "")
	c.Flags().StringVar(&dirFlag, "dir", "", "")
	c.Flags().BoolVar(&yamlFlag, "yaml", false, "")
	c.Flags().IntVar(&numCPU, "cpu", runtime.NumCPU(), "")
	c.Flags().BoolVar(&verboseFlag, "verbose", false, "")
	c.Flags().BoolVar(&verboseFlag, "v", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	logging.Init(c.Stderr(), verboseFlag, "text")
	logger := logging.New("make")

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

	dir := dirFlag
	if dir == "" {
		dir = p.Path(project.Catalog)
		if dir == "" {
			dir = "clades"
		}
	}
	format := catalog.JSON
	if yamlFlag {
		format = catalog.YAML
	}
	cat := catalog.Open(dir, format)

	labels := clade.Labels(root)
	written, failed := writeCatalog(cat, root, labels, numCPU)

	labelFile := p.Path(project.Labels)
	if labelFile == "" {
		labelFile = filepath.Clean(dir) + "-labels.tab"
	}
	if err := catalog.WriteLabelsFile(labelFile, written); err != nil {
		return err
	}
	logger.Info("catalog written", "dir", dir, "clades", len(written), "labels", labelFile)

	p.Add(project.Catalog, dir)
	p.Add(project.Labels, labelFile)
	if err := p.Write(); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d clades not written", len(failed), len(labels))
	}
	return nil
}

// writeCatalog writes the entries of the given labels
// and returns the labels written
// and the labels that failed.
func writeCatalog(cat *catalog.Dir, root *clade.Node, labels []string, cpu int) (written, failed []string) {
	if cpu <= 0 {
		cpu = runtime.NumCPU()
	}
	logger := logging.New("make")

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(cpu)
	for _, l := range labels {
		g.Go(func() error {
			e := clade.NewEntry(l, clade.Mutations(root, l))
			err := cat.WriteEntry(e)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("unable to write clade", "label", l, "file", cat.File(l), "err", err)
				failed = append(failed, l)
				return nil
			}
			logger.Debug("clade written", "label", l, "sites", len(e.Sites), "file", cat.File(l))
			written = append(written, l)
			return nil
		})
	}
	g.Wait()

	slices.Sort(written)
	slices.Sort(failed)
	return written, failed
}

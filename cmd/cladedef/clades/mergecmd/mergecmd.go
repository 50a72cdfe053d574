// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mergecmd implements a command to merge
// the clade catalogs of two cladedef projects.
package mergecmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/cladedef/catalog"
	"github.com/js-arias/cladedef/internal/logging"
	"github.com/js-arias/cladedef/merge"
	"github.com/js-arias/cladedef/project"
	"github.com/js-arias/command"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: `merge [--labels <file>] [-o|--output <directory>]
	[--yaml] [-v|--verbose] <project-file> <project-file>`,
	Short: "merge the clade catalogs of two projects",
	Long: `
Command merge reads the clade catalogs of two cladedef projects (for example,
the catalogs of two genomic segments), and writes a new catalog with the
merged definition of each clade.

The arguments of the command are the names of the two project files.

Documents with the same label are merged key by key: if a key is found in
both documents, and both values are lists (such as sites and tags), the lists
are concatenated (so the same value might be found twice); if both values are
maps (such as rules), they are merged in the same way; otherwise the value of
the second project is used. Keys found only in one document are kept.

By default, all the labels found in any of the catalogs are merged. Use the
flag --labels to indicate a file with the list of labels to merge (see 'help
catalogs'). A label found in only one catalog is copied without change. If a
label is not found in any catalog, or a document can not be read or written,
the error is reported and the remaining labels are processed.

By default, the merged documents are written as JSON files in the directory
"clades". Use the flag --output, or -o, to define a different directory. Use
the flag --yaml to write YAML files.

Use the flag --verbose, or -v, to report each written document.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var labelsFlag string
var outputFlag string
var yamlFlag bool
var verboseFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&labelsFlag, "labels", "", "")
	c.Flags().StringVar(&outputFlag, "output", "clades", "")
	c.Flags().StringVar(&outputFlag, "o", "clades", "")
	c.Flags().BoolVar(&yamlFlag, "yaml", false, "")
	c.Flags().BoolVar(&verboseFlag, "verbose", false, "")
	c.Flags().BoolVar(&verboseFlag, "v", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting two project files")
	}

	logging.Init(c.Stderr(), verboseFlag, "text")
	logger := logging.New("merge")

	catA, err := openCatalog(args[0])
	if err != nil {
		return err
	}
	catB, err := openCatalog(args[1])
	if err != nil {
		return err
	}

	labels, err := readLabels(catA, catB)
	if err != nil {
		return err
	}

	format := catalog.JSON
	if yamlFlag {
		format = catalog.YAML
	}
	out := catalog.Open(outputFlag, format)

	var failed int
	for _, l := range labels {
		if err := mergeLabel(out, catA, catB, l); err != nil {
			logger.Error("clade not merged", "label", l, "err", err)
			failed++
			continue
		}
		logger.Debug("clade merged", "label", l, "file", out.File(l))
	}
	logger.Info("catalog merged", "dir", outputFlag, "clades", len(labels)-failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d clades not merged", failed, len(labels))
	}
	return nil
}

func openCatalog(name string) (*catalog.Dir, error) {
	p, err := project.Read(name)
	if err != nil {
		return nil, err
	}
	return p.Catalog(catalog.JSON)
}

func readLabels(catA, catB *catalog.Dir) ([]string, error) {
	if labelsFlag != "" {
		return catalog.ReadLabelsFile(labelsFlag)
	}

	la, err := catA.Labels()
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %v", catA.Path(), err)
	}
	lb, err := catB.Labels()
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %v", catB.Path(), err)
	}

	ls := append(la, lb...)
	slices.Sort(ls)
	return slices.Compact(ls), nil
}

var errNoLabel = errors.New("label not found in any catalog")

// mergeLabel merges the documents of a label.
// A document that is not in a catalog
// is merged as an empty mapping.
func mergeLabel(out, catA, catB *catalog.Dir, label string) error {
	a, okA, err := readDoc(catA, label)
	if err != nil {
		return err
	}
	b, okB, err := readDoc(catB, label)
	if err != nil {
		return err
	}
	if !okA && !okB {
		return errNoLabel
	}

	return out.Write(label, merge.Merge(a, b))
}

func readDoc(cat *catalog.Dir, label string) (any, bool, error) {
	doc, err := cat.Read(label)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// the number of defining sites
// of the clades in a catalog.
package stats

import (
	"fmt"
	"io"

	"github.com/js-arias/cladedef/catalog"
	"github.com/js-arias/command"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: "stats [--plot <image-file>] <catalog-directory>",
	Short: "print the number of sites of the clades in a catalog",
	Long: `
Command stats reads a clade catalog and prints, for each clade, the number of
sites and the number of distinct sites in the standard output, as a
tab-delimited table with the fields "label", "sites", and "distinct". The
number of sites and the number of distinct sites are only different in merged
catalogs, in which a site can be found more than once.

At the end of the table, the mean, the standard deviation, and the median of
the number of sites are printed as comments.

The argument of the command is the name of the catalog directory.

If the flag --plot is defined, a bar chart with the number of sites of each
clade will be written in the indicated file. The format of the image is
defined by the file extension (for example, ".png" or ".svg").
	`,
	SetFlags: setFlags,
	Run:      run,
}

var plotFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&plotFlag, "plot", "", "")
}

// siteCount is the number of sites of a clade.
type siteCount struct {
	label    string
	sites    int
	distinct int
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting catalog directory")
	}

	cat := catalog.Open(args[0], catalog.JSON)
	labels, err := cat.Labels()
	if err != nil {
		return err
	}

	counts := make([]siteCount, 0, len(labels))
	for _, l := range labels {
		doc, err := cat.Read(l)
		if err != nil {
			return err
		}
		counts = append(counts, countSites(l, doc))
	}

	if err := writeCounts(c.Stdout(), counts); err != nil {
		return err
	}

	if plotFlag != "" && len(counts) > 0 {
		if err := plotCounts(plotFlag, counts); err != nil {
			return fmt.Errorf("while writing plot %q: %v", plotFlag, err)
		}
	}
	return nil
}

// countSites returns the number of sites
// in a clade document.
func countSites(label string, doc any) siteCount {
	sc := siteCount{label: label}

	m, ok := doc.(map[string]any)
	if !ok {
		return sc
	}
	sites, ok := m["sites"].([]any)
	if !ok {
		return sc
	}

	distinct := make(map[string]bool, len(sites))
	for _, s := range sites {
		distinct[fmt.Sprint(s)] = true
	}
	sc.sites = len(sites)
	sc.distinct = len(distinct)
	return sc
}

func writeCounts(w io.Writer, counts []siteCount) error {
	if _, err := fmt.Fprintf(w, "label\tsites\tdistinct\n"); err != nil {
		return err
	}
	for _, sc := range counts {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", sc.label, sc.sites, sc.distinct); err != nil {
			return err
		}
	}
	if len(counts) == 0 {
		return nil
	}

	x := make([]float64, 0, len(counts))
	for _, sc := range counts {
		x = append(x, float64(sc.sites))
	}
	mean, sd := stat.MeanStdDev(x, nil)
	slices.Sort(x)
	median := stat.Quantile(0.5, stat.Empirical, x, nil)

	fmt.Fprintf(w, "# clades: %d\n", len(counts))
	fmt.Fprintf(w, "# mean: %.3f\n", mean)
	if len(counts) > 1 {
		fmt.Fprintf(w, "# sd: %.3f\n", sd)
	}
	fmt.Fprintf(w, "# median: %.1f\n", median)
	return nil
}

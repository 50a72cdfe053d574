// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLabels reads a list of clade labels
// from a TSV file.
//
// The TSV file must contain the following field:
//
//   - label, the clade label
//
// Here is an example file:
//
//	# clade labels
//	label
//	3C.2a1b.2a
//	2a.1
//
// Empty labels are ignored,
// and the order of the first occurrence of each label
// is preserved.
func ReadLabels(r io.Reader) ([]string, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	f := "label"
	col, ok := fields[f]
	if !ok {
		return nil, fmt.Errorf("expecting field %q", f)
	}

	seen := make(map[string]bool)
	var ls []string
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if col >= len(row) {
			continue
		}

		l := strings.TrimSpace(row[col])
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		ls = append(ls, l)
	}
	return ls, nil
}

// ReadLabelsFile reads a list of clade labels
// from a file.
func ReadLabelsFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ls, err := ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ls, nil
}

// WriteLabels writes a list of clade labels
// as a TSV file.
func WriteLabels(w io.Writer, labels []string) error {
	fmt.Fprintf(w, "# clade labels\n")
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"label"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, l := range labels {
		if err := tab.Write([]string{l}); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// WriteLabelsFile writes a list of clade labels
// into a file.
func WriteLabelsFile(name string, labels []string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := WriteLabels(f, labels); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

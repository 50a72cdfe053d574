// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package catalog implements reading and writing
// of clade catalogs.
//
// A clade catalog is a directory
// with a document for each clade,
// named with the clade label
// and an extension that indicates the document format
// (either JSON or YAML).
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/merge"
	"gopkg.in/yaml.v3"
)

// Format is the format of the catalog documents.
type Format string

// Valid formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Ext returns the file extension of a format.
func (f Format) Ext() string {
	if f == YAML {
		return ".yaml"
	}
	return ".json"
}

// ParseFormat returns the format of a name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown catalog format %q", name)
}

// ErrInvalidLabel is returned when a label
// can not be used as a file name.
var ErrInvalidLabel = errors.New("invalid label")

// extensions in reading order
var exts = []string{".json", ".yaml", ".yml"}

// A Dir is a clade catalog stored in a directory.
type Dir struct {
	path   string
	format Format
}

// Open returns a catalog stored at the given path.
// New documents will be written with the given format.
// The directory is not created until
// a document is written.
func Open(path string, format Format) *Dir {
	if format == "" {
		format = JSON
	}
	return &Dir{
		path:   path,
		format: format,
	}
}

// Path returns the path of the catalog directory.
func (d *Dir) Path() string {
	return d.path
}

// File returns the name of the file
// used to write a label.
func (d *Dir) File(label string) string {
	return filepath.Join(d.path, label+d.format.Ext())
}

func checkLabel(label string) error {
	if label == "" || label == "." || label == ".." || strings.ContainsAny(label, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return nil
}

// Write writes a document for a label.
// If a document for the label already exists,
// it will be replaced.
func (d *Dir) Write(label string, doc any) (err error) {
	if err := checkLabel(label); err != nil {
		return err
	}

	var data []byte
	switch d.format {
	case YAML:
		data, err = yaml.Marshal(yamlValue(doc))
	default:
		data, err = json.MarshalIndent(doc, "", "    ")
	}
	if err != nil {
		return fmt.Errorf("label %q: %v", label, err)
	}

	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return err
	}

	name := d.File(label)
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

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	if d.format == JSON {
		if _, err := f.Write([]byte("\n")); err != nil {
			return fmt.Errorf("while writing to %q: %v", name, err)
		}
	}
	return nil
}

// WriteEntry writes a clade entry
// using the entry label.
func (d *Dir) WriteEntry(e clade.Entry) error {
	return d.Write(e.Label, e)
}

// Read reads the document of a label.
// If there is no document for the label,
// the returned error will be os.ErrNotExist.
func (d *Dir) Read(label string) (any, error) {
	if err := checkLabel(label); err != nil {
		return nil, err
	}

	for _, ext := range exts {
		name := filepath.Join(d.path, label+ext)
		data, err := os.ReadFile(name)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		doc, err := decode(data, ext)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("catalog %q: label %q: %w", d.path, label, os.ErrNotExist)
}

// ReadEntry reads a clade entry.
func (d *Dir) ReadEntry(label string) (clade.Entry, error) {
	doc, err := d.Read(label)
	if err != nil {
		return clade.Entry{}, err
	}

	var e clade.Entry
	if err := merge.FromDocument(doc, &e); err != nil {
		return clade.Entry{}, fmt.Errorf("catalog %q: label %q: %v", d.path, label, err)
	}
	return e, nil
}

// Labels returns the labels with a document
// in the catalog.
func (d *Dir) Labels() ([]string, error) {
	files, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}

	var ls []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		ext := filepath.Ext(name)
		if !slices.Contains(exts, strings.ToLower(ext)) {
			continue
		}
		l := strings.TrimSuffix(name, ext)
		if l == "" {
			continue
		}
		ls = append(ls, l)
	}
	slices.Sort(ls)
	return slices.Compact(ls), nil
}

func decode(data []byte, ext string) (any, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return normalize(doc), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// normalize converts YAML mappings with non-string keys
// into mappings with string keys.
func normalize(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		for k, e := range vv {
			vv[k] = normalize(e)
		}
		return vv
	case map[any]any:
		m := make(map[string]any, len(vv))
		for k, e := range vv {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range vv {
			vv[i] = normalize(e)
		}
		return vv
	}
	return v
}

// yamlValue converts JSON numbers
// into YAML numbers.
func yamlValue(v any) any {
	switch vv := v.(type) {
	case json.Number:
		if i, err := vv.Int64(); err == nil {
			return i
		}
		if f, err := vv.Float64(); err == nil {
			return f
		}
		return vv.String()
	case map[string]any:
		m := make(map[string]any, len(vv))
		for k, e := range vv {
			m[k] = yamlValue(e)
		}
		return m
	case []any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = yamlValue(e)
		}
		return s
	}
	return v
}

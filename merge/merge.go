// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package merge implements the structural merge
// of two hierarchical documents,
// as used to combine the clade catalogs
// of different genomic segments.
//
// A document is made of mappings (map[string]any),
// sequences ([]any),
// and scalar values,
// as returned by encoding/json
// or gopkg.in/yaml.v3
// when decoding into an empty interface.
package merge

import (
	"encoding/json"
	"fmt"

	"github.com/js-arias/cladedef/clade"
)

// Merge returns the merge of two documents.
//
// If both documents are mappings,
// the result has every key of a,
// keys found in both documents are merged,
// and keys found only in b are added.
// If both documents are sequences,
// the result is the concatenation of a and b,
// and duplicated values are kept.
// In any other case
// the result is b.
//
// Merge is not commutative:
// when a scalar value differs,
// the value of b is used.
//
// The input documents are never modified
// and the result does not share mappings or sequences
// with them.
func Merge(a, b any) any {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			break
		}
		m := make(map[string]any, len(av)+len(bv))
		for k, v := range av {
			m[k] = clone(v)
		}
		for k, v := range bv {
			if prev, ok := av[k]; ok {
				m[k] = Merge(prev, v)
				continue
			}
			m[k] = clone(v)
		}
		return m
	case []any:
		bv, ok := b.([]any)
		if !ok {
			break
		}
		s := make([]any, 0, len(av)+len(bv))
		for _, v := range av {
			s = append(s, clone(v))
		}
		for _, v := range bv {
			s = append(s, clone(v))
		}
		return s
	}
	return clone(b)
}

// clone returns a deep copy of a document.
func clone(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(vv))
		for k, e := range vv {
			m[k] = clone(e)
		}
		return m
	case []any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = clone(e)
		}
		return s
	}
	return v
}

// Entries merges two clade catalog entries.
//
// Sites and tags are concatenated
// (so they might have duplicates),
// and the label, description, note,
// and rule thresholds
// are taken from b.
func Entries(a, b clade.Entry) (clade.Entry, error) {
	da, err := Document(a)
	if err != nil {
		return clade.Entry{}, err
	}
	db, err := Document(b)
	if err != nil {
		return clade.Entry{}, err
	}

	var e clade.Entry
	if err := FromDocument(Merge(da, db), &e); err != nil {
		return clade.Entry{}, err
	}
	return e, nil
}

// Document returns the generic document form of a value,
// using its JSON encoding.
func Document(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("merge: while encoding document: %v", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("merge: while decoding document: %v", err)
	}
	return doc, nil
}

// FromDocument stores a generic document
// in the value pointed by v,
// using its JSON encoding.
func FromDocument(doc, v any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("merge: while encoding document: %v", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("merge: while decoding document: %v", err)
	}
	return nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package merge_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/cladedef/clade"
	"github.com/js-arias/cladedef/merge"
)

func decode(t testing.TB, s string) any {
	t.Helper()

	var doc any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatalf("unable to decode %q: %v", s, err)
	}
	return doc
}

func TestMerge(t *testing.T) {
	tests := map[string]struct {
		a, b string
		want string
	}{
		"entries": {
			a:    `{"label": "X", "sites": ["A1G"], "rules": {"default": {"min_alt": "1"}}}`,
			b:    `{"label": "Y", "sites": ["T5C"], "rules": {"default": {"min_alt": "2"}}}`,
			want: `{"label": "Y", "sites": ["A1G", "T5C"], "rules": {"default": {"min_alt": "2"}}}`,
		},
		"keys only in one side": {
			a:    `{"a": 1, "both": {"x": [1]}}`,
			b:    `{"b": 2, "both": {"y": [2]}}`,
			want: `{"a": 1, "b": 2, "both": {"x": [1], "y": [2]}}`,
		},
		"duplicated values": {
			a:    `["A1G", "T5C"]`,
			b:    `["T5C"]`,
			want: `["A1G", "T5C", "T5C"]`,
		},
		"scalar replaces mapping": {
			a:    `{"rules": {"default": {}}}`,
			b:    `{"rules": 3}`,
			want: `{"rules": 3}`,
		},
		"mapping replaces scalar": {
			a:    `{"rules": "none"}`,
			b:    `{"rules": {"default": {}}}`,
			want: `{"rules": {"default": {}}}`,
		},
		"sequence replaces mapping": {
			a:    `{"sites": {"A1G": true}}`,
			b:    `{"sites": ["A1G"]}`,
			want: `{"sites": ["A1G"]}`,
		},
		"null wins": {
			a:    `{"note": "first", "sites": ["A1G"]}`,
			b:    `{"note": null, "sites": null}`,
			want: `{"note": null, "sites": null}`,
		},
		"empty mapping": {
			a:    `{}`,
			b:    `{"label": "Y", "tags": ["Y"]}`,
			want: `{"label": "Y", "tags": ["Y"]}`,
		},
		"scalars": {
			a:    `true`,
			b:    `"b"`,
			want: `"b"`,
		},
	}

	for name, test := range tests {
		a := decode(t, test.a)
		b := decode(t, test.b)
		want := decode(t, test.want)

		got := merge.Merge(a, b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestMergeNotCommutative(t *testing.T) {
	a := decode(t, `{"label": "X", "note": "same", "tags": ["X"]}`)
	b := decode(t, `{"label": "Y", "note": "same", "tags": ["Y"]}`)

	ab := merge.Merge(a, b).(map[string]any)
	ba := merge.Merge(b, a).(map[string]any)
	if cmp.Equal(ab, ba) {
		t.Errorf("merge(a, b) and merge(b, a) are equal: %v", ab)
	}
	if ab["label"] != "Y" {
		t.Errorf("merge(a, b): label: got %v, want %q", ab["label"], "Y")
	}
	if ba["label"] != "X" {
		t.Errorf("merge(b, a): label: got %v, want %q", ba["label"], "X")
	}
}

func TestMergeSequencesAssociative(t *testing.T) {
	a := decode(t, `{"sites": ["A1G"]}`)
	b := decode(t, `{"sites": ["T5C", "A1G"]}`)
	c := decode(t, `{"sites": ["C7G"]}`)

	left := merge.Merge(merge.Merge(a, b), c)
	right := merge.Merge(a, merge.Merge(b, c))
	if diff := cmp.Diff(left, right); diff != "" {
		t.Errorf("merge is not associative (-left +right):\n%s", diff)
	}
}

func TestMergeSelf(t *testing.T) {
	a := decode(t, `{
		"label": "2a",
		"sites": ["A1G", "T5C"],
		"tags": ["2a"],
		"rules": {"default": {"min_alt": "", "max_ref": ""}}
	}`)
	want := decode(t, `{
		"label": "2a",
		"sites": ["A1G", "T5C", "A1G", "T5C"],
		"tags": ["2a", "2a"],
		"rules": {"default": {"min_alt": "", "max_ref": ""}}
	}`)

	got := merge.Merge(a, a)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeInputsUnchanged(t *testing.T) {
	const docA = `{"sites": ["A1G"], "rules": {"default": {"min_alt": "1"}}}`
	const docB = `{"sites": ["T5C"], "rules": {"Probable": {"min_alt": "2"}}, "extra": {"k": ["v"]}}`
	a := decode(t, docA)
	b := decode(t, docB)

	got := merge.Merge(a, b).(map[string]any)

	// modify the result
	got["sites"].([]any)[0] = "changed"
	got["rules"].(map[string]any)["default"].(map[string]any)["min_alt"] = "changed"
	got["extra"].(map[string]any)["k"].([]any)[0] = "changed"

	if diff := cmp.Diff(decode(t, docA), a); diff != "" {
		t.Errorf("first document modified (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(decode(t, docB), b); diff != "" {
		t.Errorf("second document modified (-want +got):\n%s", diff)
	}
}

func TestEntries(t *testing.T) {
	ha := clade.NewEntry("2a.1", []string{"A1G", "T5C"})
	na := clade.NewEntry("2a.1", []string{"T5C", "G9A"})
	na.Note = "NA segment"
	na.Rules[clade.DefaultRule] = clade.Rule{MinAlt: "2", MaxRef: "1"}

	got, err := merge.Entries(ha, na)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := clade.Entry{
		Label:       "2a.1",
		Description: "2a.1 defining mutations",
		Sources:     []string{},
		Tags:        []string{"2a.1", "2a.1"},
		Sites:       []string{"A1G", "T5C", "G9A", "T5C"},
		Note:        "NA segment",
		Rules: map[string]clade.Rule{
			clade.DefaultRule:  {MinAlt: "2", MaxRef: "1"},
			clade.ProbableRule: {},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

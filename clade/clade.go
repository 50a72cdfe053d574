// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clade implements the search of clade labels
// and clade defining mutations
// in a phylogenetic tree.
package clade

import "slices"

// A Node is a node of a rooted phylogenetic tree.
type Node struct {
	// Label is the clade declared by the node.
	// An empty label means that the node
	// does not declare a clade.
	// Labels are not inherited from the parent.
	Label string

	// Mutations are the substitution codes
	// of the branch that leads into the node.
	Mutations []string

	// Children are the descendants of the node,
	// in document order.
	Children []*Node
}

// Labels returns the clade labels
// declared by any node of the tree.
// The labels are sorted.
func Labels(root *Node) []string {
	if root == nil {
		return nil
	}

	set := make(map[string]bool)
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Label != "" {
			set[n.Label] = true
		}

		// children are pushed in reverse
		// to keep the pre-order
		for i := len(n.Children) - 1; i >= 0; i-- {
			if n.Children[i] != nil {
				stack = append(stack, n.Children[i])
			}
		}
	}

	ls := make([]string, 0, len(set))
	for l := range set {
		ls = append(ls, l)
	}
	slices.Sort(ls)
	return ls
}

// Mutations returns the mutations associated with a clade label.
//
// The tree is traversed from the root.
// The mutations of each visited node are collected,
// and when a node with the given label is found
// its descendants are not visited.
// Then, the result includes the mutations
// from the root to each node with the label,
// but not the mutations of the descendants of those nodes.
// If the label is not found,
// all the mutations of the tree are returned.
//
// The returned mutations are sorted and without duplicates.
func Mutations(root *Node, label string) []string {
	if root == nil {
		return nil
	}

	set := make(map[string]bool)
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, m := range n.Mutations {
			set[m] = true
		}
		if label != "" && n.Label == label {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			if n.Children[i] != nil {
				stack = append(stack, n.Children[i])
			}
		}
	}

	ms := make([]string, 0, len(set))
	for m := range set {
		ms = append(ms, m)
	}
	slices.Sort(ms)
	return ms
}

// Catalog returns the catalog entries
// of all the clades in a tree,
// sorted by label.
func Catalog(root *Node) []Entry {
	labels := Labels(root)
	entries := make([]Entry, 0, len(labels))
	for _, l := range labels {
		entries = append(entries, NewEntry(l, Mutations(root, l)))
	}
	return entries
}

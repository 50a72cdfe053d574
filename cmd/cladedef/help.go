// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(catalogsGuide)
	app.Add(projectsGuide)
	app.Add(treesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Cladedef uses a project file to keep track of the files of a genomic segment:
the phylogenetic tree, the clade catalog built from the tree, and the list of
clade labels of the catalog. Most of the time, the best way to edit or view
this file is by using cladedef commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# cladedef project files
	dataset	path
	tree	flu_seasonal_h3n2_ha_12y.json
	catalog	ha
	labels	ha-labels.tab

The valid file types are:

- Phylogenetic trees. Defined by the dataset keyword "tree". This file is a
  tree exported by Nextstrain (an Auspice JSON file). The recommended way to
  add a tree is by using the command 'cladedef tree add'.
- Clade catalogs. Defined by the dataset keyword "catalog". This is a
  directory with a document for each clade. It is created with the command
  'cladedef clades make'.
- Clade labels. Defined by the dataset keyword "labels". This file contains
  the list of clade labels of the catalog, in the form of a tab-delimited
  file. It is created with the command 'cladedef clades make'.
	`,
}

var treesGuide = &command.Command{
	Usage: "trees",
	Short: "about tree files",
	Long: `
Cladedef reads phylogenetic trees exported by Nextstrain (Auspice v2 JSON
files), for example the files downloaded from nextstrain.org.

The tree is stored in the "tree" field of the file. Each node can declare a
clade in its node attributes, and the nucleotide substitutions of the branch
that leads into the node are stored in the branch attributes:

	{
	  "name": "NODE_0000012",
	  "node_attrs": {"clade_membership": {"value": "3C.2a1b.2a"}},
	  "branch_attrs": {"mutations": {"nuc": ["G3A", "A10T"]}},
	  "children": [...]
	}

By default the clade label is read from the "clade_membership" attribute, and
the mutations from the "nuc" set. Most commands accept the flags --attr and
--gene to use a different attribute (for example "subclade") or a different
set of mutations (for example "HA1", for amino acid substitutions).

Clade labels are not inherited: a node without a clade attribute does not
belong to any clade.
	`,
}

var catalogsGuide = &command.Command{
	Usage: "catalogs",
	Short: "about clade catalogs",
	Long: `
A clade catalog is a directory with a document for each clade. The name of
the document is the clade label, and its extension is the format of the
document (".json" or ".yaml").

Here is an example document:

	{
	    "label": "2a.1",
	    "description": "2a.1 defining mutations",
	    "sources": [],
	    "tags": ["2a.1"],
	    "sites": ["A1G", "T5C"],
	    "note": "Unique mutations for sublineage",
	    "rules": {
	        "default": {"min_alt": "", "max_ref": ""},
	        "Probable": {"min_alt": "", "max_ref": ""}
	    }
	}

The sites of a clade are the mutations found from the root of the tree to
each node of the clade. Mutations of the descendants of a node of the clade
are not included. If a clade is found in different parts of the tree, the
mutations of all of them are included.

When two catalogs are merged (for example the catalogs of two genomic
segments), the lists of both documents (such as sites and tags) are
concatenated, so the same site can be found twice, and any other value (such
as label, description, note, or a rule threshold) is taken from the second
document.
	`,
}

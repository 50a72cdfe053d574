// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Cladedef is a tool to build clade definition catalogs
// from Nextstrain phylogenetic trees.
package main

import (
	"github.com/js-arias/cladedef/cmd/cladedef/clades"
	"github.com/js-arias/cladedef/cmd/cladedef/prj"
	"github.com/js-arias/cladedef/cmd/cladedef/tree"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "cladedef <command> [<argument>...]",
	Short: "a tool to build clade definition catalogs",
}

func init() {
	app.Add(clades.Command)
	app.Add(prj.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}

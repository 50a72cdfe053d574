// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with phylogenetic trees.
package tree

import (
	"github.com/js-arias/cladedef/cmd/cladedef/tree/add"
	"github.com/js-arias/cladedef/cmd/cladedef/tree/labels"
	"github.com/js-arias/cladedef/cmd/cladedef/tree/sites"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for phylogenetic trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(labels.Command)
	Command.Add(sites.Command)
}

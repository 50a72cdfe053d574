// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clades is a metapackage for commands
// that dealt with clade catalogs.
package clades

import (
	"github.com/js-arias/cladedef/cmd/cladedef/clades/makecmd"
	"github.com/js-arias/cladedef/cmd/cladedef/clades/mergecmd"
	"github.com/js-arias/cladedef/cmd/cladedef/clades/stats"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "clades <command> [<argument>...]",
	Short: "commands for clade catalogs",
}

func init() {
	Command.Add(makecmd.Command)
	Command.Add(mergecmd.Command)
	Command.Add(stats.Command)
}

// SPDX-License-Identifier: MIT
package tape

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders values field by field; Block & Expr String methods would otherwise print the
// canonical source instead of the tree.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

// Dump writes the structure of tree to w.
func Dump(w io.Writer, tree Block) { dumper.Fdump(w, tree) }

// Sdump obtains the structure of tree as a string.
func Sdump(tree Block) string { return dumper.Sdump(tree) }

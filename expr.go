// SPDX-License-Identifier: MIT
package tape

import (
	"strings"

	"gitlab.com/fisherprime/tape/lexer"
)

type (
	// Expr is a node of the expression tree.
	//
	// The variant set is closed: Dot, Comma, Plus, Minus, ShiftRight, ShiftLeft, Comment & Loop.
	Expr interface {
		// String renders the node as source.
		String() string

		expr()
	}

	// Block is an ordered sequence of Expr.
	Block []Expr

	// Dot writes the addressed cell to the output.
	Dot struct{}
	// Comma reads the front input byte into the addressed cell.
	Comma struct{}
	// Plus increments the addressed cell.
	Plus struct{}
	// Minus decrements the addressed cell.
	Minus struct{}
	// ShiftRight moves the pointer one cell right.
	ShiftRight struct{}
	// ShiftLeft moves the pointer one cell left.
	ShiftLeft struct{}

	// Comment holds non-instruction source text; it has no effect.
	Comment struct {
		Text string
	}

	// Loop repeats Body while the addressed cell is non-zero.
	//
	// A Loop exclusively owns its Body.
	Loop struct {
		Body Block
	}
)

func (Dot) expr()        {}
func (Comma) expr()      {}
func (Plus) expr()       {}
func (Minus) expr()      {}
func (ShiftRight) expr() {}
func (ShiftLeft) expr()  {}
func (Comment) expr()    {}
func (Loop) expr()       {}

func (Dot) String() string        { return "." }
func (Comma) String() string      { return "," }
func (Plus) String() string       { return "+" }
func (Minus) String() string      { return "-" }
func (ShiftRight) String() string { return ">" }
func (ShiftLeft) String() string  { return "<" }
func (c Comment) String() string  { return c.Text }

func (l Loop) String() string { return "[" + l.Body.String() + "]" }

// String renders the Block as source.
func (b Block) String() string {
	var buffer strings.Builder
	for _, e := range b {
		buffer.WriteString(e.String())
	}

	return buffer.String()
}

// instructions maps the single-character Items onto their Expr.
var instructions = map[lexer.ItemID]Expr{
	lexer.ItemDot:        Dot{},
	lexer.ItemComma:      Comma{},
	lexer.ItemPlus:       Plus{},
	lexer.ItemMinus:      Minus{},
	lexer.ItemShiftRight: ShiftRight{},
	lexer.ItemShiftLeft:  ShiftLeft{},
}

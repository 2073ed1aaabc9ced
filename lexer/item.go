// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Span is a half-open byte range [Start, End) into the lexed source.
	Span struct {
		Start int
		End   int
	}

	// Item type holding the identity & source span of a lexed token.
	Item struct {
		Err  error
		ID   ItemID // The type of this Item
		Span Span   // The bytes of the source covered by this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_               ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemError                     // Notify occurrence of an `error`.
	ItemDot                       // '.'
	ItemComma                     // ','
	ItemOpenSquare                // '['
	ItemCloseSquare               // ']'
	ItemPlus                      // '+'
	ItemMinus                     // '-'
	ItemShiftRight                // '>'
	ItemShiftLeft                 // '<'
	ItemComment                   // Word & space characters.
	ItemNewline                   // One or more newline sequences.
	ItemUnknown                   // Input no rule matches.
)

var itemNames = map[ItemID]string{
	ItemError:       "Error",
	ItemDot:         "Dot",
	ItemComma:       "Comma",
	ItemOpenSquare:  "OpenSquare",
	ItemCloseSquare: "CloseSquare",
	ItemPlus:        "Plus",
	ItemMinus:       "Minus",
	ItemShiftRight:  "ShiftRight",
	ItemShiftLeft:   "ShiftLeft",
	ItemComment:     "Comment",
	ItemNewline:     "Newline",
	ItemUnknown:     "Unknown",
}

// String is the fmt.Stringer implementation for ItemID.
func (id ItemID) String() string {
	if name, ok := itemNames[id]; ok {
		return name
	}

	return fmt.Sprintf("ItemID(%d)", int(id))
}

// Len obtains the number of bytes covered by the Span.
func (s Span) Len() int { return s.End - s.Start }

// String formats the Span as "(start, end)".
func (s Span) String() string { return fmt.Sprintf("(%d, %d)", s.Start, s.End) }

// Text slices the Item's bytes out of the source it was lexed from.
func (i Item) Text(source string) string { return source[i.Span.Start:i.Span.End] }

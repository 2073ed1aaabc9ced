// SPDX-License-Identifier: MIT
package tape

import (
	"fmt"
	"strings"

	"gitlab.com/fisherprime/tape/lexer"
)

// Position is a diagnostic (column, line) location; Line is 1-based.
//
// Column counts the bytes of every non-newline Item consumed so far & is not reset by newlines.
type Position struct {
	Column int
	Line   int
}

// String formats the Position as "line:column".
func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// advance moves the Position past item.
func (p *Position) advance(item lexer.Item, source string) {
	if item.ID == lexer.ItemNewline {
		p.Line += strings.Count(item.Text(source), "\n")
		return
	}

	p.Column += item.Span.Len()
}

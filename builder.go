// SPDX-License-Identifier: MIT
package tape

import (
	"context"
	"fmt"

	"gitlab.com/fisherprime/tape/lexer"
)

type (
	// Builder generates an expression tree from lexed Items.
	Builder struct {
		cfg *Config
	}

	// cursor is the Items left to build from & the diagnostic position reached.
	cursor struct {
		items  []lexer.Item
		index  int
		source string
		pos    Position
	}
)

// NewBuilder instantiates a Builder; a nil cfg uses DefConfig.
func NewBuilder(cfg *Config) *Builder {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	return &Builder{cfg: cfg}
}

// next obtains the following Item, moving the position past it.
func (c *cursor) next() (item lexer.Item, ok bool) {
	if c.index >= len(c.items) {
		return
	}
	item, ok = c.items[c.index], true
	c.index++
	c.pos.advance(item, c.source)

	return
}

// Build generates the expression tree for items lexed from source.
//
// Top-level comments & newlines are kept as Comment nodes. A bracket mismatch is reported to the
// configured Reporter & returned as a *StructuralError, with no partial tree.
func (b *Builder) Build(ctx context.Context, items []lexer.Item, source string) (tree Block, err error) {
	defer func() {
		if err == nil {
			return
		}

		// Skip expensive operation if not debug.
		if b.cfg.Debug {
			b.cfg.Logger.Debugf("partial tree: %s", Sdump(tree))
		}
		tree = nil
	}()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		cur := &cursor{items: items, source: source, pos: Position{Line: 1}}
		for {
			item, ok := cur.next()
			if !ok {
				break
			}

			switch item.ID {
			case lexer.ItemCloseSquare:
				err = b.fail(item.Text(source), unmatchedCloseMsg, cur.pos, ErrUnmatchedClose)
				return
			case lexer.ItemOpenSquare:
				var loop Loop
				if loop, err = b.parseLoop(cur, 1, cur.pos); err != nil {
					return
				}
				tree = append(tree, loop)
			case lexer.ItemComment, lexer.ItemNewline:
				tree = append(tree, Comment{Text: item.Text(source)})
			default:
				// Unknown Items are dropped.
				if expr, ok := instructions[item.ID]; ok {
					tree = append(tree, expr)
				}
			}
		}

		if b.cfg.Debug {
			b.cfg.Logger.Debugf("built %d top-level expressions, end position %s", len(tree), cur.pos)
		}
	}

	return
}

// parseLoop builds the Loop whose '[' was just consumed, up to & including its matching ']'.
//
// outer is the position just past the outermost enclosing '['; running out of Items at any depth
// is reported there. Comments, newlines & unknown Items inside a loop are dropped.
func (b *Builder) parseLoop(cur *cursor, depth int, outer Position) (loop Loop, err error) {
	if depth > b.cfg.MaxDepth {
		err = b.fail("[", fmt.Sprintf(nestingMsgFmt, b.cfg.MaxDepth), cur.pos, ErrNestingTooDeep)
		return
	}

	for {
		item, ok := cur.next()
		if !ok {
			err = b.fail("[", unmatchedOpenMsg, outer, ErrUnmatchedOpen)
			return
		}

		switch item.ID {
		case lexer.ItemCloseSquare:
			return
		case lexer.ItemOpenSquare:
			var nested Loop
			if nested, err = b.parseLoop(cur, depth+1, outer); err != nil {
				return
			}
			loop.Body = append(loop.Body, nested)
		default:
			if expr, ok := instructions[item.ID]; ok {
				loop.Body = append(loop.Body, expr)
			}
		}
	}
}

// fail reports a structural failure, returning it as an error.
func (b *Builder) fail(literal, message string, pos Position, sentinel error) error {
	b.cfg.Reporter.InvalidToken(literal, message, pos)

	return &StructuralError{
		Literal: literal,
		Message: message,
		Pos:     pos,
		Err:     sentinel,
	}
}

// SPDX-License-Identifier: MIT
package lexer

// REF: https://pkg.go.dev/regexp#Regexp.Longest

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// Lexer defines a type to split a source string into Items by longest-match rules.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		rules []Rule

		// c is a channel for communicating lexed Items.
		c          chan Item
		bufferSize int

		// source is the input source.
		source string
		// consumed is the number of source bytes already emitted as Items.
		consumed int
	}
)

// Lexing errors.
var (
	ErrCanceled = errors.New("lexing canceled")
)

// New creates a new scanner for the configured source.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger:     logrus.New(),
		rules:      DefaultRules(),
		bufferSize: defBufferSize,
	}

	for _, opt := range opts {
		opt(l)
	}
	l.c = make(chan Item, l.bufferSize)

	return l
}

// Tokenize lexes the whole source, returning the Items in source order.
//
// The spans of the returned Items are contiguous & cover the source exactly.
func Tokenize(ctx context.Context, source string, opts ...Option) (items []Item, err error) {
	l := New(append(opts, WithSource(source))...)
	go l.Lex(ctx)

	items = make([]Item, 0, len(source))
	for {
		item, proceed := l.Item()
		if !proceed {
			break
		}

		if item.ID == ItemError {
			// Keep draining so the lexing goroutine can close the channel.
			err = item.Err
			continue
		}

		items = append(items, item)
	}

	if err != nil {
		items = nil
	}

	return
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Consumed obtains the number of source bytes lexed so far.
func (l *Lexer) Consumed() int { return l.consumed }

// Lex lexes the source, sending every Item over the Lexer's channel.
//
// The channel is closed once the source is exhausted or the context is canceled.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	for l.consumed < len(l.source) {
		select {
		case <-ctx.Done():
			l.EmitError(errors.Join(ErrCanceled, ctx.Err()))
			return
		default:
			l.Emit(l.next())
		}
	}
}

// next scans the Item at the current offset.
func (l *Lexer) next() (item Item) {
	rem := l.source[l.consumed:]

	id, length := l.longest(rem)
	if length < 1 {
		id, length = ItemUnknown, l.unknownLen(rem)
	}

	item = Item{ID: id, Span: Span{Start: l.consumed, End: l.consumed + length}}
	l.consumed += length

	return
}

// longest evaluates every Rule against input, returning the longest match.
//
// Ties go to the Rule declared first; zero-length matches are ignored.
func (l *Lexer) longest(input string) (id ItemID, length int) {
	for _, rule := range l.rules {
		if n := rule.match(input); n > length {
			id, length = rule.ID, n
		}
	}

	return
}

// unknownLen consumes one rune at a time until some Rule matches the remaining input.
func (l *Lexer) unknownLen(input string) (length int) {
	for length < len(input) {
		_, size := utf8.DecodeRuneInString(input[length:])
		length += size

		if _, n := l.longest(input[length:]); n > 0 {
			break
		}
	}

	return
}

// Emit sends an Item over the communication channel.
func (l *Lexer) Emit(item Item) {
	if l.debug {
		l.logger.Debugf("lexer Emit: %s %s %q", item.ID, item.Span, item.Text(l.source))
	}

	l.c <- item
}

// EmitError sends an error over the `Lexer`'s channel.
func (l *Lexer) EmitError(err error) {
	l.c <- Item{
		ID:  ItemError,
		Err: err,
		// Zero-length span at the failure offset.
		Span: Span{Start: l.consumed, End: l.consumed},
	}
}

// Item return a lexed Item from the input.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}

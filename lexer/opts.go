// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Lexer)

const defBufferSize = 64

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source string) Option { return func(l *Lexer) { l.source = source } }

// WithRules replaces the default rule set.
func WithRules(rules []Rule) Option { return func(l *Lexer) { l.rules = rules } }

// WithBufferSize configures the capacity of the Item channel.
func WithBufferSize(n int) Option {
	return func(l *Lexer) {
		if n >= 0 {
			l.bufferSize = n
		}
	}
}

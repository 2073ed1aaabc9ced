// SPDX-License-Identifier: MIT
package tape

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type (
	// Reporter is the diagnostic sink for failures found before execution.
	//
	// Implementations only describe the failure; the caller decides whether to continue.
	Reporter interface {
		// InvalidToken reports an offending token with an explanation & the current position.
		InvalidToken(literal, message string, pos Position)
		// MissingSource reports a source path that does not exist or is a directory.
		MissingSource(path string)
	}

	// ConsoleReporter writes human-readable diagnostics, optionally ANSI colored.
	ConsoleReporter struct {
		w     io.Writer
		color bool
	}

	// LogReporter sends diagnostics to a logrus.FieldLogger at the error level.
	LogReporter struct {
		Logger logrus.FieldLogger
	}
)

// NewConsoleReporter instantiates a ConsoleReporter writing to w.
func NewConsoleReporter(w io.Writer, color bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, color: color}
}

// InvalidToken writes: Found invalid token "<literal>" at position <line>:<column>. <message>
func (c *ConsoleReporter) InvalidToken(literal, message string, pos Position) {
	fmt.Fprintf(c.w, "Found invalid token \"%s\" at position %s:%s. %s\n",
		c.paint(literal, ansiBoldRed), c.paint(fmt.Sprint(pos.Line), ansiYellow),
		c.paint(fmt.Sprint(pos.Column), ansiYellow), message)
}

// MissingSource writes: Path "<path>" is invalid or does not exist.
func (c *ConsoleReporter) MissingSource(path string) {
	fmt.Fprintf(c.w, "Path \"%s\" is invalid or does not exist.\n", c.paint(path, ansiBoldRed))
}

const (
	ansiBoldRed = "\x1b[1;31m"
	ansiYellow  = "\x1b[33m"
	ansiReset   = "\x1b[0m"
)

func (c *ConsoleReporter) paint(s, code string) string {
	if !c.color {
		return s
	}

	return code + s + ansiReset
}

// InvalidToken logs the token, its position & the message.
func (l *LogReporter) InvalidToken(literal, message string, pos Position) {
	l.Logger.WithFields(logrus.Fields{
		"token":  literal,
		"line":   pos.Line,
		"column": pos.Column,
	}).Error(message)
}

// MissingSource logs the path.
func (l *LogReporter) MissingSource(path string) {
	l.Logger.WithField("path", path).Error(ErrSourceUnavailable)
}

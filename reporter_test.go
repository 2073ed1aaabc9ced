// SPDX-License-Identifier: MIT
package tape

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type (
	invalidTokenCall struct {
		literal string
		message string
		pos     Position
	}

	// recordingReporter keeps every diagnostic it receives.
	recordingReporter struct {
		invalid []invalidTokenCall
		missing []string
	}
)

func (r *recordingReporter) InvalidToken(literal, message string, pos Position) {
	r.invalid = append(r.invalid, invalidTokenCall{literal, message, pos})
}

func (r *recordingReporter) MissingSource(path string) { r.missing = append(r.missing, path) }

func TestConsoleReporter_InvalidToken(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleReporter(&buf, false).InvalidToken("]", unmatchedCloseMsg, Position{Column: 4, Line: 2})

	require.Equal(t,
		"Found invalid token \"]\" at position 2:4. Expected token \"[\" to be present before a closing square bracket.\n",
		buf.String())
}

func TestConsoleReporter_color(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf, true)

	r.InvalidToken("[", unmatchedOpenMsg, Position{Column: 1, Line: 1})
	require.Contains(t, buf.String(), ansiBoldRed+"["+ansiReset)
	require.Contains(t, buf.String(), ansiYellow+"1"+ansiReset)

	buf.Reset()
	r.MissingSource("prog.b")
	require.Equal(t, "Path \""+ansiBoldRed+"prog.b"+ansiReset+"\" is invalid or does not exist.\n", buf.String())
}

func TestLogReporter(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := &LogReporter{Logger: logger}

	r.InvalidToken("]", unmatchedCloseMsg, Position{Column: 3, Line: 1})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.ErrorLevel, entry.Level)
	require.Equal(t, unmatchedCloseMsg, entry.Message)
	require.Equal(t, logrus.Fields{"token": "]", "line": 1, "column": 3}, entry.Data)

	r.MissingSource("nope.b")
	require.Equal(t, "nope.b", hook.LastEntry().Data["path"])
	require.Len(t, hook.AllEntries(), 2)
}

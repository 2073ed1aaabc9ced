// SPDX-License-Identifier: MIT
package tape

import (
	"errors"
	"fmt"
)

// StructuralError reports a bracket or nesting failure found while building the tree.
type StructuralError struct {
	// Literal is the offending token text.
	Literal string
	Message string
	Pos     Position

	// Err is one of ErrUnmatchedOpen, ErrUnmatchedClose or ErrNestingTooDeep.
	Err error
}

// Tree building errors.
var (
	ErrUnmatchedOpen  = errors.New("unmatched opening bracket")
	ErrUnmatchedClose = errors.New("unmatched closing bracket")
	ErrNestingTooDeep = errors.New("loop nesting too deep")
)

// Execution errors.
var (
	ErrInputExhausted = errors.New("input exhausted")
	ErrOutput         = errors.New("failed to write output")
)

// Source errors.
var (
	ErrSourceUnavailable = errors.New("source path is invalid or does not exist")
)

const (
	unmatchedCloseMsg = `Expected token "[" to be present before a closing square bracket.`
	unmatchedOpenMsg  = `Expected token "]" to be present to safely close this loop.`
	nestingMsgFmt     = "Loop nesting exceeds the maximum depth of %d."
)

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%v: %q at %s: %s", e.Err, e.Literal, e.Pos, e.Message)
}

// Unwrap exposes the sentinel error.
func (e *StructuralError) Unwrap() error { return e.Err }

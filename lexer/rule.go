// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"regexp"
)

// Rule maps a pattern to the ItemID it produces.
//
// Rules are consulted in declaration order; on equal match lengths the earlier Rule wins.
type Rule struct {
	ID      ItemID
	Pattern *regexp.Regexp
}

// Rule errors.
var (
	ErrInvalidRule = errors.New("invalid lexer rule")
)

// NewRule compiles a Rule, anchoring its pattern at the start of the remaining input.
func NewRule(id ItemID, pattern string) (r Rule, err error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		err = fmt.Errorf("%w (%s): %v", ErrInvalidRule, id, err)
		return
	}
	re.Longest()

	return Rule{ID: id, Pattern: re}, nil
}

// MustRule is NewRule, panicking on an invalid pattern.
func MustRule(id ItemID, pattern string) Rule {
	r, err := NewRule(id, pattern)
	if err != nil {
		panic(err)
	}

	return r
}

// DefaultRules obtains the rule set for the eight tape instructions plus comments & newlines.
//
// Comment uses the word class of letters, marks, digits & connector punctuation so non-ASCII
// prose is a single Comment.
func DefaultRules() []Rule {
	return []Rule{
		MustRule(ItemDot, `\.`),
		MustRule(ItemComma, `,`),
		MustRule(ItemOpenSquare, `\[`),
		MustRule(ItemCloseSquare, `\]`),
		MustRule(ItemPlus, `\+`),
		MustRule(ItemMinus, `-`),
		MustRule(ItemShiftRight, `>`),
		MustRule(ItemShiftLeft, `<`),
		MustRule(ItemComment, `[\p{L}\p{M}\p{N}\p{Pc} ]+`),
		MustRule(ItemNewline, `(?:\n|\r\n)+`),
	}
}

// match returns the length of the Rule's match at the start of input, 0 for none.
func (r Rule) match(input string) int {
	loc := r.Pattern.FindStringIndex(input)
	if loc == nil {
		return 0
	}

	return loc[1]
}

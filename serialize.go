// SPDX-License-Identifier: MIT
package tape

import (
	"context"
	"strings"
)

// Serialize transforms an expression tree back into source.
//
// The output holds every instruction & bracket plus the retained top-level comments.
func Serialize(ctx context.Context, tree Block) (output string, err error) {
	var buffer strings.Builder

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		for _, e := range tree {
			if _, err = buffer.WriteString(e.String()); err != nil {
				// Invalidate serialization output.
				return
			}
		}

		output = buffer.String()
	}

	return
}

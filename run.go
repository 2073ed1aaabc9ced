// SPDX-License-Identifier: MIT
package tape

import (
	"context"
	"io"

	"gitlab.com/fisherprime/tape/lexer"
)

// Parse tokenizes & builds source; no instruction runs before the whole source is parsed.
func Parse(ctx context.Context, cfg *Config, source string) (tree Block, err error) {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	items, err := lexer.Tokenize(ctx, source, lexer.WithLogger(cfg.Logger), lexer.WithDebug(cfg.Debug))
	if err != nil {
		return
	}

	return NewBuilder(cfg).Build(ctx, items, source)
}

// Run parses source & executes it on a fresh Machine reading input & writing to output.
//
// The Machine is returned for inspection, nil when parsing fails.
func Run(ctx context.Context, cfg *Config, source string, input []byte, output io.Writer) (m *Machine, err error) {
	if cfg == nil {
		cfg = DefConfig()
	}

	tree, err := Parse(ctx, cfg, source)
	if err != nil {
		return
	}

	m = NewMachine(cfg, WithInput(input), WithOutput(output))
	err = m.Run(ctx, tree)

	return
}

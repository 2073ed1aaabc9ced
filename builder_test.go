// SPDX-License-Identifier: MIT
package tape

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/tape/lexer"
)

func build(t *testing.T, cfg *Config, source string) (Block, error) {
	t.Helper()

	items, err := lexer.Tokenize(context.Background(), source)
	require.NoError(t, err)

	return NewBuilder(cfg).Build(context.Background(), items, source)
}

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantTree Block
		wantErr  error
		wantPos  Position
	}{
		{
			name:     "instructions",
			source:   "+-><.,",
			wantTree: Block{Plus{}, Minus{}, ShiftRight{}, ShiftLeft{}, Dot{}, Comma{}},
		},
		{
			name:   "nested loops",
			source: "+[>[-]<-]",
			wantTree: Block{Plus{}, Loop{Body: Block{
				ShiftRight{}, Loop{Body: Block{Minus{}}}, ShiftLeft{}, Minus{},
			}}},
		},
		{
			name:     "empty loop",
			source:   "[]",
			wantTree: Block{Loop{}},
		},
		{
			name:     "top-level comments kept",
			source:   "add 2\n++",
			wantTree: Block{Comment{Text: "add 2"}, Comment{Text: "\n"}, Plus{}, Plus{}},
		},
		{
			name:     "loop comments dropped",
			source:   "[dec\n-]",
			wantTree: Block{Loop{Body: Block{Minus{}}}},
		},
		{
			name:     "unknown dropped",
			source:   "+#+",
			wantTree: Block{Plus{}, Plus{}},
		},
		{
			name:    "lone closing bracket",
			source:  "]",
			wantErr: ErrUnmatchedClose,
			wantPos: Position{Column: 1, Line: 1},
		},
		{
			name:    "extra closing bracket",
			source:  "[-]]",
			wantErr: ErrUnmatchedClose,
			wantPos: Position{Column: 4, Line: 1},
		},
		{
			name:    "closing bracket after newline",
			source:  "+\n]",
			wantErr: ErrUnmatchedClose,
			wantPos: Position{Column: 2, Line: 2},
		},
		{
			name:    "unclosed loop",
			source:  "+[-",
			wantErr: ErrUnmatchedOpen,
			wantPos: Position{Column: 2, Line: 1},
		},
		{
			name:    "unclosed outer loop",
			source:  "[[-]",
			wantErr: ErrUnmatchedOpen,
			wantPos: Position{Column: 1, Line: 1},
		},
		{
			name:    "unclosed inner loop",
			source:  "+[[-",
			wantErr: ErrUnmatchedOpen,
			wantPos: Position{Column: 2, Line: 1},
		},
		{
			name:    "unclosed loop after newline",
			source:  "\n[[[",
			wantErr: ErrUnmatchedOpen,
			wantPos: Position{Column: 1, Line: 2},
		},
		{
			name:    "newline run counts every line",
			source:  "+\n\n]",
			wantErr: ErrUnmatchedClose,
			wantPos: Position{Column: 2, Line: 3},
		},
		{
			name:    "carriage return newlines",
			source:  "+\r\n\r\n\r\n]",
			wantErr: ErrUnmatchedClose,
			wantPos: Position{Column: 2, Line: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			gotTree, err := build(t, &Config{Reporter: reporter}, tt.source)

			if !errors.Is(err, tt.wantErr) || (err != nil) != (tt.wantErr != nil) {
				t.Errorf("Builder.Build() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(gotTree, tt.wantTree) {
				t.Errorf("Builder.Build() = %v, want %v", gotTree, tt.wantTree)
			}

			if tt.wantErr == nil {
				require.Empty(t, reporter.invalid)
				return
			}

			var structural *StructuralError
			require.ErrorAs(t, err, &structural)
			require.Equal(t, tt.wantPos, structural.Pos)

			require.Len(t, reporter.invalid, 1)
			require.Equal(t, structural.Literal, reporter.invalid[0].literal)
			require.Equal(t, structural.Message, reporter.invalid[0].message)
			require.Equal(t, tt.wantPos, reporter.invalid[0].pos)
		})
	}
}

func TestBuilder_Build_maxDepth(t *testing.T) {
	cfg := &Config{MaxDepth: 2, Reporter: &recordingReporter{}}

	tree, err := build(t, cfg, "[[]]")
	require.NoError(t, err)
	require.Equal(t, Block{Loop{Body: Block{Loop{}}}}, tree)

	_, err = build(t, cfg, "[[[]]]")
	require.ErrorIs(t, err, ErrNestingTooDeep)

	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	require.Equal(t, Position{Column: 3, Line: 1}, structural.Pos)
}

func TestBuilder_Build_logReporter(t *testing.T) {
	logger, hook := test.NewNullLogger()

	_, err := build(t, &Config{Logger: logger}, "+]")
	require.ErrorIs(t, err, ErrUnmatchedClose)
	require.Equal(t, "]", hook.LastEntry().Data["token"])
	require.Equal(t, 2, hook.LastEntry().Data["column"])
}

func TestBuilder_Build_debugDump(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := build(t, &Config{Logger: logger, Reporter: &recordingReporter{}, Debug: true}, "+-[")
	require.ErrorIs(t, err, ErrUnmatchedOpen)

	var dump string
	for _, entry := range hook.AllEntries() {
		if strings.HasPrefix(entry.Message, "partial tree: ") {
			dump = entry.Message
		}
	}
	require.Contains(t, dump, "tape.Plus")
	require.Contains(t, dump, "tape.Minus")
	require.NotContains(t, dump, "+-")
}

func TestBuilder_Build_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tree, err := NewBuilder(nil).Build(ctx, []lexer.Item{{ID: lexer.ItemPlus, Span: lexer.Span{End: 1}}}, "+")
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, tree)
}

// randomProgram generates well-bracketed instruction-only source.
func randomProgram(r *rand.Rand, buf *strings.Builder, depth int) {
	const ops = "+-<>.,"

	for n := r.Intn(6); n > 0; n-- {
		if depth < 4 && r.Intn(4) == 0 {
			buf.WriteByte('[')
			randomProgram(r, buf, depth+1)
			buf.WriteByte(']')
			continue
		}
		buf.WriteByte(ops[r.Intn(len(ops))])
	}
}

func TestBuilder_Build_nesting(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		var buf strings.Builder
		randomProgram(r, &buf, 0)
		source := buf.String()

		tree, err := build(t, nil, source)
		require.NoError(t, err, source)

		got, err := Serialize(context.Background(), tree)
		require.NoError(t, err)
		require.Equal(t, source, got)
	}
}

func TestBuilder_Build_deep(t *testing.T) {
	const depth = 50000

	source := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	tree, err := build(t, &Config{MaxDepth: depth}, source)
	require.NoError(t, err)

	levels := 0
	for len(tree) == 1 {
		loop, ok := tree[0].(Loop)
		require.True(t, ok)
		tree = loop.Body
		levels++
	}
	require.Equal(t, depth, levels)
}

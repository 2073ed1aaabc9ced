// SPDX-License-Identifier: MIT
package tape

import (
	"context"
	"fmt"
	"io"

	"gitlab.com/fisherprime/tape/types"
)

type (
	// Machine executes expression trees against a tape of TapeSize cells.
	//
	// The tape & pointer persist across Run calls; a Machine is not safe for concurrent use.
	Machine struct {
		cfg *Config

		tape    [TapeSize]byte
		pointer int

		// input is the queue consumed by top-level Comma instructions.
		input  types.ByteQueue
		output io.Writer
		outBuf [1]byte

		steps uint64
	}

	// MachineOption defines the Machine functional option type.
	MachineOption func(*Machine)

	// frame is a Block being executed; loop frames re-enter their Block while the cell is
	// non-zero.
	frame struct {
		body  Block
		index int
		input types.ByteQueue
		loop  bool
	}
)

const (
	// cancelCheckInterval is the number of steps between context checks.
	cancelCheckInterval = 1 << 12

	// debugWindow is the number of cells either side of the pointer dumped on halt.
	debugWindow = 8
)

// NewMachine instantiates a zeroed Machine; a nil cfg uses DefConfig.
func NewMachine(cfg *Config, options ...MachineOption) *Machine {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	m := &Machine{cfg: cfg, output: io.Discard}
	for _, opt := range options {
		opt(m)
	}

	return m
}

// WithInput configures the bytes consumed by Comma.
func WithInput(input []byte) MachineOption {
	return func(m *Machine) { m.input = types.NewByteQueue(input) }
}

// WithOutput configures the destination of Dot.
func WithOutput(w io.Writer) MachineOption { return func(m *Machine) { m.output = w } }

// Pointer obtains the index of the addressed cell.
func (m *Machine) Pointer() int { return m.pointer }

// Cell obtains the value of the addressed cell.
func (m *Machine) Cell() byte { return m.tape[m.pointer] }

// Cells copies the tape cells in [from, to), clamped to the tape.
func (m *Machine) Cells(from, to int) []byte {
	from, to = max(from, 0), min(to, TapeSize)
	if from >= to {
		return []byte{}
	}

	out := make([]byte, to-from)
	copy(out, m.tape[from:to])

	return out
}

// Remaining copies out the input not yet consumed at the top level.
func (m *Machine) Remaining() []byte { return m.input.Bytes() }

// Steps obtains the number of instructions & loop iterations executed.
func (m *Machine) Steps() uint64 { return m.steps }

// Reset zeroes the tape & the pointer; the input is kept.
func (m *Machine) Reset() {
	m.tape = [TapeSize]byte{}
	m.pointer, m.steps = 0, 0
}

// Run executes tree.
//
// Loops are driven from an explicit frame stack, so nesting depth & iteration count never grow
// the goroutine stack. Execution stops at the end of tree, on ErrInputExhausted, on ErrOutput or
// when ctx is done.
func (m *Machine) Run(ctx context.Context, tree Block) (err error) {
	root := &frame{body: tree, input: m.input}
	stack := types.NewStack(root)
	defer func() {
		if err != nil && m.cfg.SharedInput {
			unwind(stack)
		}
		m.input = root.input

		// Skip expensive operation if not debug.
		if m.cfg.Debug {
			m.cfg.Logger.Debugf("machine halted after %d steps at cell %d (%d), err: %v\n%s",
				m.steps, m.pointer, m.tape[m.pointer], err,
				dumper.Sdump(m.Cells(m.pointer-debugWindow, m.pointer+debugWindow+1)))
		}
	}()

	for {
		f, ok := stack.Peek()
		if !ok {
			return
		}

		if f.index >= len(f.body) {
			_, _ = stack.Pop()
			if !f.loop {
				continue
			}

			parent, _ := stack.Peek()
			if m.cfg.SharedInput {
				parent.input = f.input
			}

			if m.tape[m.pointer] != 0 {
				if err = m.tick(ctx); err != nil {
					return
				}

				f.index = 0
				if !m.cfg.SharedInput {
					f.input = parent.input.Fork()
				}
				stack.Push(f)
			}

			continue
		}

		if err = m.tick(ctx); err != nil {
			return
		}

		expr := f.body[f.index]
		f.index++

		switch e := expr.(type) {
		case Dot:
			if err = m.emit(); err != nil {
				return
			}
		case Comma:
			b, ok := f.input.Pop()
			if !ok {
				err = fmt.Errorf("%w: reading into cell %d", ErrInputExhausted, m.pointer)
				return
			}
			m.tape[m.pointer] = b
		case Plus:
			m.tape[m.pointer]++
		case Minus:
			m.tape[m.pointer]--
		case ShiftRight:
			m.pointer = types.Wrap(m.pointer, 1, m.cfg.addressSpace())
		case ShiftLeft:
			m.pointer = types.Wrap(m.pointer, -1, m.cfg.addressSpace())
		case Comment:
		case Loop:
			if m.tape[m.pointer] == 0 {
				continue
			}

			stack.Push(&frame{body: e.Body, input: f.input.Fork(), loop: true})
		default:
			err = fmt.Errorf("unknown expression %T", e)
			return
		}
	}
}

// unwind hands the input consumed by every open loop frame back to its parent, innermost first.
func unwind(stack *types.Stack[*frame]) {
	for {
		f, ok := stack.Pop()
		if !ok || !f.loop {
			return
		}

		if parent, ok := stack.Peek(); ok {
			parent.input = f.input
		}
	}
}

// tick counts a step, checking for cancellation every cancelCheckInterval steps.
func (m *Machine) tick(ctx context.Context) error {
	m.steps++
	if m.steps%cancelCheckInterval != 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// emit writes the addressed cell to the output.
func (m *Machine) emit() error {
	m.outBuf[0] = m.tape[m.pointer]
	if _, err := m.output.Write(m.outBuf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"gitlab.com/fisherprime/tape"
)

const (
	historyFile = ".tape_history"
	promptMain  = "tape> "
	promptCont  = "....> "

	// tapeWindow is the number of cells shown on either side of the pointer by :tape.
	tapeWindow = 8
)

const banner = `tape REPL
The tape persists between lines; a line with an unclosed '[' continues on the next.
Ctrl+C cancels input or a running program, Ctrl+D exits.
Commands: :tape  :reset  :quit`

// prompter reads one line of input; satisfied by *liner.State.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// quietReporter discards diagnostics raised while probing for incomplete input.
type quietReporter struct{}

func (quietReporter) InvalidToken(string, string, tape.Position) {}
func (quietReporter) MissingSource(string)                       {}

func cmdRepl(cfg *tape.Config, input []byte, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	probe := *cfg
	probe.Reporter, probe.Debug = quietReporter{}, false

	m := tape.NewMachine(cfg, tape.WithInput(input), tape.WithOutput(stdout))
	for {
		code, ok := readProgram(ln, &probe)
		if !ok {
			fmt.Fprintln(stdout)
			return exitOK
		}

		trimmed := strings.TrimSpace(code)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return exitOK
			case ":reset":
				m.Reset()
			case ":tape":
				printTape(stdout, m)
			default:
				fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			}
			continue
		}

		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		evalLine(cfg, m, code, stdout, stderr)
	}
}

// evalLine parses & runs code on the session Machine; Ctrl+C interrupts only this run.
func evalLine(cfg *tape.Config, m *tape.Machine, code string, stdout, stderr io.Writer) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tree, err := tape.Parse(ctx, cfg, code)
	if err != nil {
		// Structural errors were already reported.
		return
	}

	if err = m.Run(ctx, tree); err != nil {
		fmt.Fprintln(stderr, err)
	}
	fmt.Fprintln(stdout)
}

// readProgram reads lines until they form source without an unclosed loop.
//
// ok is false at end of input.
func readProgram(p prompter, probe *tape.Config) (code string, ok bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Aborted prompt; drop the partial program.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := tape.Parse(context.Background(), probe, src); errors.Is(perr, tape.ErrUnmatchedOpen) {
			continue
		}

		return src, true
	}
}

func printTape(w io.Writer, m *tape.Machine) {
	from := max(m.Pointer()-tapeWindow, 0)
	cells := m.Cells(from, m.Pointer()+tapeWindow+1)

	var b strings.Builder
	for i, c := range cells {
		if from+i == m.Pointer() {
			fmt.Fprintf(&b, "[%d] ", c)
			continue
		}
		fmt.Fprintf(&b, "%d ", c)
	}
	fmt.Fprintf(w, "pointer %d, remaining input %d bytes\n%s\n", m.Pointer(), len(m.Remaining()), strings.TrimSpace(b.String()))
}

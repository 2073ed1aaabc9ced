// SPDX-License-Identifier: MIT

// Package tape tokenizes, builds & executes programs for the eight-instruction tape language.
//
// The pipeline is [lexer.Tokenize] → [Builder.Build] → [Machine.Run]; [Run] chains all three.
//
// Two default behaviours limit the machine & can be switched off through
// [Config]:
//
//   - The cell pointer wraps within 0-255, so only the first 256 of the 30000 tape cells are
//     addressable. Set [Config.WideAddressing] to wrap over the whole tape instead.
//   - Every loop iteration reads from its own copy of the input remaining when the iteration
//     started; bytes read by `,` inside a loop are not consumed for the caller. Set
//     [Config.SharedInput] to thread one queue through every iteration.
//
// Diagnostic positions are "line:column". The line advances once for every `\n` in a run of
// newlines, so `+\n\n]` reports line 3; interpreters that count a newline run as a single line
// report line 2 for the same source. The column never resets. An unclosed `[` is reported just
// past the outermost `[` still open.
package tape

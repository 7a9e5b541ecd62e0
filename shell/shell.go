// Package shell implements the interactive command stream collaborator
// of spec.md §6: a tiny line-free protocol of single-byte opcodes
// (K/I/D/X plus the debug commands P/C) that drives an engine.Engine.
//
// Ported from original_source/src/unit.c's commandShell(). The C loop
// polls CLOCK_MONOTONIC itself inside the read loop; here the same
// wall-clock cutoff is expressed as a context.Context deadline, the
// idiomatic Go way to bound a blocking read loop.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"mlcs/engine"
)

// Shell holds the engine across 'K' resets and the running I/D op count.
type Shell struct {
	eng    *engine.Engine
	resets int
	count  int
}

// New returns an empty shell; it has no engine until the first 'K'.
func New() *Shell {
	return &Shell{}
}

// OpCount returns the number of I/D commands processed so far.
func (sh *Shell) OpCount() int { return sh.count }

// Resets returns the number of 'K' commands processed so far.
func (sh *Shell) Resets() int { return sh.resets }

// Run reads opcodes from r until 'X', EOF, or ctx's deadline, applying
// each to the held engine. out receives the status lines of P
// ("[PRINT] lambda = ...") and C ("[CHECK] ok"); the Pareto-front dump
// that P triggers goes to the standard logger instead. out may be nil to
// discard the status lines.
func (sh *Shell) Run(ctx context.Context, r io.Reader, out io.Writer) error {
	br := bufio.NewReader(r)
	if out == nil {
		out = io.Discard
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		c, err := br.ReadByte()
		if err != nil {
			return nil // EOF ends the shell, same as running out of input in the C version
		}

		switch c {
		case 'X':
			return nil
		case 'K':
			sh.resets++
			dim, err := readInt(br)
			if err != nil {
				return fmt.Errorf("shell: reading dim: %w", err)
			}
			sigma, err := readInt(br)
			if err != nil {
				return fmt.Errorf("shell: reading sigma: %w", err)
			}
			sh.eng = engine.New(dim, sigma)
		case 'I':
			sh.count++
			t, err := readInt(br)
			if err != nil {
				return fmt.Errorf("shell: reading string index: %w", err)
			}
			letter, err := readNonSpace(br)
			if err != nil {
				return fmt.Errorf("shell: reading letter: %w", err)
			}
			sh.eng.Append(t, letter)
		case 'D':
			sh.count++
			t, err := readInt(br)
			if err != nil {
				return fmt.Errorf("shell: reading string index: %w", err)
			}
			sh.eng.Pop(t)
		case 'P':
			fmt.Fprintf(out, "[PRINT] lambda = %d\n", sh.eng.MLCSSize())
			sh.eng.PrintMLCS()
		case 'C':
			sh.eng.CheckMLCS()
			fmt.Fprintln(out, "[CHECK] ok")
		default:
			// whitespace and unrecognized bytes between commands are ignored,
			// matching the C switch's implicit no-op default.
		}
	}
}

func readInt(br *bufio.Reader) (int, error) {
	var n int
	_, err := fmt.Fscan(br, &n)
	return n, err
}

func readNonSpace(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if c != ' ' {
			return c, nil
		}
	}
}

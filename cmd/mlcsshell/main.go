// Command mlcsshell runs the interactive MLCS command shell described in
// spec.md §6 against stdin, exiting 0 iff at least -min-count I/D
// commands were processed before 'X', EOF, or the -time-limit deadline.
//
// Ported from original_source/src/unit.c's main()/commandShell(), with
// the hardcoded 1000000 default and argv[1] override turned into flags,
// the idiomatic Go shape for this kind of CLI knob.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"mlcs/shell"
)

func main() {
	minCount := flag.Int("min-count", 1_000_000, "minimum number of I/D commands for a zero exit code")
	timeLimit := flag.Duration("time-limit", 60*time.Second, "wall-clock budget for the command stream")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeLimit)
	defer cancel()

	sh := shell.New()
	start := time.Now()
	if err := sh.Run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("%s ops in %s (%d resets)\n", humanize.Comma(int64(sh.OpCount())), elapsed.Round(time.Millisecond), sh.Resets())

	if sh.OpCount() < *minCount {
		os.Exit(1)
	}
	os.Exit(0)
}

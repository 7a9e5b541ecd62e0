// Package errutil centralizes the programmer-error assertions used across
// the engine: dominance-index invariants, dyn-string bounds, and Pareto
// front consistency are all "this must never happen" conditions, not
// recoverable errors.
package errutil

import (
	"fmt"
	"os"
)

var debug bool

func init() {
	if os.Getenv("MLCS_DEBUG") == "1" {
		debug = true
	}
}

// Debug reports whether invariant checks are enabled for this run
// (MLCS_DEBUG=1 in the environment).
func Debug() bool {
	return debug
}

// First returns the first non-nil error, or nil if all are nil.
func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// FatalIf panics if err is non-nil. There is no recovery path for
// programmer errors (see spec §7).
func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("FATAL: %v", err))
}

// Bug panics unconditionally with a formatted message when invariant
// checks are enabled.
func Bug(format string, msg ...any) {
	if debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

// BugOn panics with the formatted message if cond is true and invariant
// checks are enabled.
func BugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		Bug(format, msg...)
	}
}

// BugOnNotEq panics if a != b and invariant checks are enabled.
func BugOnNotEq(a, b any) {
	if a == b {
		return
	}
	Bug("BUG: a != b, %v != %v", a, b)
}

// Assert panics unconditionally (regardless of the debug flag) — used for
// the "bad argument" / "empty operation" error kinds of spec §7, which are
// always fatal even in non-debug builds.
func Assert(cond bool, format string, msg ...any) {
	if !cond {
		panic(fmt.Sprintf(format, msg...))
	}
}

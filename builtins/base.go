// Package builtins holds the shell's built-in commands and the dispatch
// table that resolves command names to behaviors.
package builtins

import (
	"fmt"
	"sort"

	"github.com/tansell/minishell/core/host"
)

// Result is the outcome of one pipeline stage.
//
// A nil Output means the stage has nothing to forward to the next stage
// and nothing for the shell to print; failed stages always report a nil
// Output alongside a non-zero ExitCode.
type Result struct {
	ExitCode int
	Output   *string

	// Terminate signals the end of the session. It is not a failure and
	// takes precedence over ExitCode and Output.
	Terminate bool
}

// Text returns a successful Result carrying output.
func Text(s string) Result {
	return Result{Output: &s}
}

// Fail returns a failed Result with no output.
func Fail(code int) Result {
	return Result{ExitCode: code}
}

// Func runs a built-in command with its arguments and the output of the
// previous pipeline stage (nil when the stage is first in the pipeline).
type Func func(h host.OS, args []string, stdin *string) Result

var registry = make(map[string]Func)

// register adds a command to the dispatch table, it panics on duplicates
// to catch bad wiring at startup.
func register(name string, fn Func) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("duplicate builtin registered: %q", name))
	}
	registry[name] = fn
}

// Resolve maps a command name to its behavior. Lookups are case-sensitive
// exact matches; unknown names resolve to the external process fallback,
// never an error.
func Resolve(name string) Func {
	if fn, ok := registry[name]; ok {
		return fn
	}

	return func(h host.OS, args []string, stdin *string) Result {
		return runExternal(h, name, args, stdin)
	}
}

// IsBuiltin reports whether name is in the dispatch table.
func IsBuiltin(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the registered command names in sorted order.
func Names() []string {
	var out []string
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

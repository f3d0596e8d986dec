package builtins

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tansell/minishell/core/host"
)

// runExternal is the fallback for command names missing from the dispatch
// table. It spawns the named program as a child process, feeds it the
// piped input and waits for it to finish.
//
// Captured stdout and stderr each have a single trailing newline stripped.
// Any stderr text is forwarded to the session's diagnostic stream so it
// never flows into the next pipeline stage.
func runExternal(h host.OS, name string, args []string, stdin *string) Result {
	cmd := exec.Command(name, args...)
	if stdin != nil {
		cmd.Stdin = strings.NewReader(*stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(h.Stderr(), "%s: command not found\n", name)
			return Fail(1)
		}
	}

	if diag := strings.TrimSuffix(stderr.String(), "\n"); diag != "" {
		fmt.Fprintln(h.Stderr(), diag)
	}

	out := strings.TrimSuffix(stdout.String(), "\n")
	return Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Output:   &out,
	}
}

package builtins

import (
	"github.com/tansell/minishell/core/host"
)

// Exit signals the end of the session. It never produces output or an
// exit code of its own: the executor stops the pipeline immediately and
// the surrounding loop shuts the session down.
func Exit(h host.OS, args []string, stdin *string) Result {
	return Result{Terminate: true}
}

var _ Func = Exit

func init() {
	register("exit", Exit)
}

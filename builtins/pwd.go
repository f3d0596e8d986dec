package builtins

import (
	"fmt"

	"github.com/tansell/minishell/core/host"
)

// Pwd reports the absolute path of the session's working directory.
func Pwd(h host.OS, args []string, stdin *string) Result {
	wd, err := h.Getwd()
	if err != nil {
		fmt.Fprintf(h.Stderr(), "pwd: %v\n", err)
		return Fail(1)
	}

	return Text(wd)
}

var _ Func = Pwd

func init() {
	register("pwd", Pwd)
}

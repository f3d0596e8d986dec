package builtins

import (
	"strings"

	"github.com/tansell/minishell/core/host"
)

// Echo joins its arguments with single spaces. Piped input is prepended
// verbatim, with no separator. Echo never fails.
func Echo(h host.OS, args []string, stdin *string) Result {
	out := strings.Join(args, " ")
	if stdin != nil {
		out = *stdin + out
	}

	return Text(out)
}

var _ Func = Echo

func init() {
	register("echo", Echo)
}

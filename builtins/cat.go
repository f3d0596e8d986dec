package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/tansell/minishell/core/host"
)

// Cat concatenates its file arguments. Without arguments it passes piped
// input through unchanged, or reads the session's stdin to EOF.
func Cat(h host.OS, args []string, stdin *string) Result {
	if len(args) == 0 {
		if stdin != nil {
			return Text(*stdin)
		}

		data, err := io.ReadAll(h.Stdin())
		if err != nil {
			fmt.Fprintf(h.Stderr(), "cat: %v\n", err)
			return Fail(1)
		}
		return Text(string(data))
	}

	var out strings.Builder
	for _, path := range args {
		data, err := afero.ReadFile(h.Fs(), path)
		if err != nil {
			fmt.Fprintf(h.Stderr(), "cat: %v\n", err)
			return Fail(1)
		}
		out.Write(data)
	}

	return Text(out.String())
}

var _ Func = Cat

func init() {
	register("cat", Cat)
}

package builtins

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/tansell/minishell/core/host"
)

// Wc counts lines, words and bytes. The first argument names a file to
// count; otherwise piped input or the session's stdin is counted.
//
// The line count is split-based: text is cut at every '\n' and the number
// of pieces is reported, so a trailing newline yields one extra empty
// segment. Byte counts come from the file size when reading a file and
// from the UTF-8 encoded length when counting text.
func Wc(h host.OS, args []string, stdin *string) Result {
	var content string
	var bytes int64

	switch {
	case len(args) > 0:
		path := args[0]
		data, err := afero.ReadFile(h.Fs(), path)
		if err != nil {
			fmt.Fprintf(h.Stderr(), "wc: %v\n", err)
			return Fail(1)
		}
		info, err := h.Fs().Stat(path)
		if err != nil {
			fmt.Fprintf(h.Stderr(), "wc: %v\n", err)
			return Fail(1)
		}
		content = string(data)
		bytes = info.Size()

	case stdin != nil:
		content = *stdin
		bytes = int64(len(content))

	default:
		data, err := io.ReadAll(h.Stdin())
		if err != nil {
			fmt.Fprintf(h.Stderr(), "wc: %v\n", err)
			return Fail(1)
		}
		content = string(data)
		bytes = int64(len(content))
	}

	lines := len(strings.Split(content, "\n"))
	words := len(strings.Fields(content))

	return Text(fmt.Sprintf("%d %d %d", lines, words, bytes))
}

var _ Func = Wc

func init() {
	register("wc", Wc)
}

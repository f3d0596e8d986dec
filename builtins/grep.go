package builtins

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/tansell/minishell/core/host"
)

// Grep searches its input line by line for a pattern.
//
// Flags:
//   -w, --word             match whole words only
//   -i, --ignore-case      case insensitive search
//   -A, --after-context N  also emit the N lines following each match
//
// The first positional argument is the pattern, the optional second is a
// file to search; otherwise piped input or the session's stdin is used.
// The after-context counter is reset, not extended, when a new match is
// found inside an open context window, so no line is emitted twice.
func Grep(h host.OS, args []string, stdin *string) Result {
	opts := getopt.New()
	word := opts.BoolLong("word", 'w', "match whole words only")
	ignoreCase := opts.BoolLong("ignore-case", 'i', "case insensitive search")
	after := opts.IntLong("after-context", 'A', 0, "print N lines after each match")

	if err := opts.Getopt(append([]string{"grep"}, args...), nil); err != nil {
		fmt.Fprintf(h.Stderr(), "grep: %v\n", err)
		return Fail(1)
	}

	positional := opts.Args()
	if len(positional) == 0 {
		fmt.Fprintln(h.Stderr(), "grep: missing pattern")
		return Fail(1)
	}

	pattern := positional[0]
	if *word {
		pattern = `\b` + regexp.QuoteMeta(pattern) + `\b`
	}
	if *ignoreCase {
		pattern = "(?i)" + pattern
	}
	regex, err := regexp.Compile(pattern)
	if err != nil {
		fmt.Fprintf(h.Stderr(), "grep: %v\n", err)
		return Fail(1)
	}

	var content string
	switch {
	case len(positional) > 1:
		data, err := afero.ReadFile(h.Fs(), positional[1])
		if err != nil {
			fmt.Fprintf(h.Stderr(), "grep: %v\n", err)
			return Fail(1)
		}
		content = string(data)

	case stdin != nil:
		content = *stdin

	default:
		data, err := io.ReadAll(h.Stdin())
		if err != nil {
			fmt.Fprintf(h.Stderr(), "grep: %v\n", err)
			return Fail(1)
		}
		content = string(data)
	}

	matched := scanLines(splitLines(content), regex, *after)
	if len(matched) == 0 {
		// No matches forward nothing, not an empty string.
		return Result{}
	}

	return Text(strings.Join(matched, "\n"))
}

// splitLines cuts text into lines without a phantom final line for a
// trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func scanLines(lines []string, regex *regexp.Regexp, afterContext int) []string {
	var out []string

	remaining := 0
	for _, line := range lines {
		switch {
		case regex.MatchString(line):
			out = append(out, line)
			remaining = afterContext
		case remaining > 0:
			out = append(out, line)
			remaining--
		}
	}

	return out
}

var _ Func = Grep

func init() {
	register("grep", Grep)
}

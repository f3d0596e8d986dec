package builtins

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/tansell/minishell/core/host/hosttest"
)

const grepSampleText = `first line
second line
third line
fourth line
Fifth LINE
SIXTH line
seventh line
eighth line
special_chars: !@#$%^&*()
unicode: 你好 мир`

func grepLines(t *testing.T, res Result) []string {
	t.Helper()

	assert.Equal(t, 0, res.ExitCode)
	if res.Output == nil {
		t.Fatal("expected output")
	}
	return strings.Split(*res.Output, "\n")
}

func TestGrep_simplePattern(t *testing.T) {
	res := Grep(hosttest.New(), []string{"line"}, str(grepSampleText))

	lines := grepLines(t, res)
	assert.Contains(t, lines, "first line")
	assert.Contains(t, lines, "second line")
	assert.NotContains(t, lines, "Fifth LINE")
}

func TestGrep_wordFlag(t *testing.T) {
	res := Grep(hosttest.New(), []string{"-w", "line"}, str(grepSampleText))

	lines := grepLines(t, res)
	assert.Contains(t, lines, "first line")
	assert.NotContains(t, lines, "Fifth LINE")
}

func TestGrep_ignoreCase(t *testing.T) {
	res := Grep(hosttest.New(), []string{"-i", "fifth"}, str(grepSampleText))

	assert.Equal(t, []string{"Fifth LINE"}, grepLines(t, res))
}

func TestGrep_afterContext(t *testing.T) {
	res := Grep(hosttest.New(), []string{"-A", "2", "third"}, str(grepSampleText))

	lines := grepLines(t, res)
	assert.Equal(t, []string{"third line", "fourth line", "Fifth LINE"}, lines)
	assert.NotContains(t, lines, "second line")
}

func TestGrep_combinedFlags(t *testing.T) {
	res := Grep(hosttest.New(), []string{"-i", "-w", "-A", "1", "sixth"}, str(grepSampleText))

	lines := grepLines(t, res)
	assert.Contains(t, lines, "SIXTH line")
	assert.Contains(t, lines, "seventh line")
	assert.NotContains(t, lines, "eighth line")
}

func TestGrep_overlappingContextsNoDuplicates(t *testing.T) {
	// Every "line" match reopens the context window; lines already
	// emitted as matches must not show up again as context.
	res := Grep(hosttest.New(), []string{"-A", "2", "line"}, str(grepSampleText))

	lines := grepLines(t, res)
	seen := make(map[string]int)
	for _, line := range lines {
		seen[line]++
	}
	for line, count := range seen {
		assert.Equal(t, 1, count, "line %q emitted more than once", line)
	}
}

func TestGrep_noMatch(t *testing.T) {
	res := Grep(hosttest.New(), []string{"zzz"}, str(grepSampleText))

	assert.Equal(t, 0, res.ExitCode)
	assert.Nil(t, res.Output, "no matches forward nothing")
}

func TestGrep_file(t *testing.T) {
	h := hosttest.New()
	assert.Nil(t, afero.WriteFile(h.FS, "/sample.txt", []byte(grepSampleText), 0600))

	res := Grep(h, []string{"third", "/sample.txt"}, nil)

	assert.Equal(t, []string{"third line"}, grepLines(t, res))
}

func TestGrep_missingFile(t *testing.T) {
	h := hosttest.New()

	res := Grep(h, []string{"third", "/nope.txt"}, nil)

	assert.Equal(t, 1, res.ExitCode)
	assert.Nil(t, res.Output)
	assert.Contains(t, h.ErrOut.String(), "grep:")
}

func TestGrep_badInvocation(t *testing.T) {
	cases := map[string][]string{
		"missing pattern": {},
		"bad context":     {"-A", "x", "pattern"},
		"unknown flag":    {"-z", "pattern"},
		"bad regex":       {"("},
	}

	for tn, args := range cases {
		t.Run(tn, func(t *testing.T) {
			h := hosttest.New()

			res := Grep(h, args, str(grepSampleText))

			assert.Equal(t, 1, res.ExitCode)
			assert.Nil(t, res.Output)
			assert.Contains(t, h.ErrOut.String(), "grep:")
		})
	}
}

func TestGrepGolden(t *testing.T) {
	cases := goldenTestSuite{
		"after-context":   {Args: []string{"-A", "2", "third"}, Stdin: str(grepSampleText)},
		"word":            {Args: []string{"-w", "line"}, Stdin: str(grepSampleText)},
		"ignore-case":     {Args: []string{"-i", "fifth"}, Stdin: str(grepSampleText)},
		"missing-pattern": {Args: nil, Stdin: str(grepSampleText)},
	}

	cases.Run(t, Grep)
}

// Package shell implements the parse, dispatch and pipe-chain execution
// pipeline behind the interactive shell, plus the read-eval-print loop
// that drives it.
package shell

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
)

// ErrEmptyInput is reported when a line is empty or whitespace-only.
var ErrEmptyInput = errors.New("empty input")

// Stage is one |-delimited sub-command of a pipeline.
type Stage struct {
	Name string
	Args []string
}

// Pipeline is the parsed form of one input line, consumed once by Execute.
type Pipeline struct {
	Stages []Stage
}

// varPattern matches ${NAME} and $NAME where NAME is [A-Za-z0-9_]+.
var varPattern = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)

// Expand substitutes environment variable references in s using getenv,
// defaulting unset variables to the empty string. Substitution is a single
// pass: substituted values are never re-scanned, and it runs on the literal
// text, so references inside quotes are replaced too.
func Expand(s string, getenv func(string) string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := varPattern.FindStringSubmatch(match)
		name := groups[1]
		if name == "" {
			name = groups[2]
		}
		return getenv(name)
	})
}

// Parse turns a raw input line into a Pipeline. The environment is passed
// in explicitly as getenv so parsing stays pure.
//
// The line is expanded, split on the literal '|', and each segment is
// tokenized with shell-style quoting. Segments that are empty after
// trimming are silently dropped, so "a | | b" runs as "a | b".
func Parse(raw string, getenv func(string) string) (Pipeline, error) {
	if strings.TrimSpace(raw) == "" {
		return Pipeline{}, ErrEmptyInput
	}

	expanded := Expand(raw, getenv)

	var p Pipeline
	for _, segment := range strings.Split(expanded, "|") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		tokens, err := shlex.Split(segment, true)
		if err != nil {
			return Pipeline{}, fmt.Errorf("parsing %q: %w", segment, err)
		}
		if len(tokens) == 0 {
			continue
		}

		p.Stages = append(p.Stages, Stage{Name: tokens[0], Args: tokens[1:]})
	}

	return p, nil
}

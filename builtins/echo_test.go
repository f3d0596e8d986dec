package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tansell/minishell/core/host/hosttest"
)

func TestEcho(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		stdin    *string
		expected string
	}{
		{"no args", nil, nil, ""},
		{"joins with spaces", []string{"hello", "world"}, nil, "hello world"},
		{"quoted arg stays one token", []string{"hello world"}, nil, "hello world"},
		{"stdin prepended verbatim", []string{"b", "c"}, str("a"), "ab c"},
		{"stdin only", nil, str("just stdin"), "just stdin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Echo(hosttest.New(), tc.args, tc.stdin)

			assert.Equal(t, 0, res.ExitCode, "echo never fails")
			if assert.NotNil(t, res.Output) {
				assert.Equal(t, tc.expected, *res.Output)
			}
		})
	}
}

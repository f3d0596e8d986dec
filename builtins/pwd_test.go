package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tansell/minishell/core/host/hosttest"
)

func TestPwd(t *testing.T) {
	h := hosttest.New()

	res := Pwd(h, nil, nil)

	assert.Equal(t, 0, res.ExitCode)
	if assert.NotNil(t, res.Output) {
		assert.Equal(t, hosttest.DefaultWorkingDir, *res.Output)
	}
}

package shell

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/tansell/minishell/core/host/hosttest"
)

// mustParse parses with the host's environment, failing the test on error.
func mustParse(t *testing.T, h *hosttest.Host, line string) Pipeline {
	t.Helper()

	p, err := Parse(line, h.Getenv)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return p
}

func TestExecute_singleStage(t *testing.T) {
	h := hosttest.New()

	outcome := Execute(h, mustParse(t, h, "echo hello world"))

	assert.Equal(t, Outcome{ExitCode: 0}, outcome)
	assert.Equal(t, "hello world\n", h.Out.String())
}

func TestExecute_pipeline(t *testing.T) {
	h := hosttest.New()

	outcome := Execute(h, mustParse(t, h, "echo line1 line2 line3 | wc"))

	assert.Equal(t, Outcome{ExitCode: 0}, outcome)
	assert.Equal(t, "1 3 17\n", h.Out.String())
}

func TestExecute_pipelineThroughFile(t *testing.T) {
	h := hosttest.New()
	assert.Nil(t, afero.WriteFile(h.FS, "/notes.txt", []byte("line1\nline2\nline3"), 0600))

	outcome := Execute(h, mustParse(t, h, "cat /notes.txt | cat | wc"))

	assert.Equal(t, Outcome{ExitCode: 0}, outcome)
	assert.Equal(t, "3 3 17\n", h.Out.String())
}

func TestExecute_variableSubstitution(t *testing.T) {
	h := hosttest.New()
	h.Setenv("TEST_VAR", "test_value")

	outcome := Execute(h, mustParse(t, h, "echo $TEST_VAR"))

	assert.Equal(t, Outcome{ExitCode: 0}, outcome)
	assert.Equal(t, "test_value\n", h.Out.String())
}

func TestExecute_roundTrip(t *testing.T) {
	h := hosttest.New()

	Execute(h, mustParse(t, h, "echo X | cat"))

	assert.Equal(t, "X\n", h.Out.String())
}

func TestExecute_shortCircuit(t *testing.T) {
	h := hosttest.New()

	// cat fails on the missing file, so the later stages never run and
	// no output is printed.
	outcome := Execute(h, mustParse(t, h, "cat /missing.txt | echo after | wc"))

	assert.Equal(t, Outcome{ExitCode: 1}, outcome)
	assert.Empty(t, h.Out.String())
	assert.Contains(t, h.ErrOut.String(), "cat:")
}

func TestExecute_terminateMidPipeline(t *testing.T) {
	h := hosttest.New()
	assert.Nil(t, afero.WriteFile(h.FS, "/notes.txt", []byte("line1\nline2\nline3"), 0600))

	outcome := Execute(h, mustParse(t, h, "cat /notes.txt | exit | wc"))

	assert.True(t, outcome.Terminated)
	assert.Empty(t, h.Out.String(), "termination prints nothing")
}

func TestExecute_emptyPipeline(t *testing.T) {
	h := hosttest.New()

	outcome := Execute(h, Pipeline{})

	assert.Equal(t, Outcome{ExitCode: 0}, outcome)
	assert.Empty(t, h.Out.String())
}

func TestExecute_externalFallback(t *testing.T) {
	h := hosttest.New()

	outcome := Execute(h, mustParse(t, h, "minishell-no-such-binary-52ad1"))

	assert.Equal(t, Outcome{ExitCode: 1}, outcome)
	assert.Empty(t, h.Out.String())
	assert.Contains(t, h.ErrOut.String(), "command not found")
}

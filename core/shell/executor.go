package shell

import (
	"fmt"

	"github.com/tansell/minishell/builtins"
	"github.com/tansell/minishell/core/host"
)

// Outcome is the result of running one pipeline.
type Outcome struct {
	// ExitCode of the last executed stage.
	ExitCode int
	// Terminated is set when a stage requested the end of the session.
	// It is not a failure and carries no output.
	Terminated bool
}

// Execute runs the pipeline's stages in order, feeding each stage's output
// to the next stage as stdin. The first non-zero exit code short-circuits
// the walk; later stages never run. The final stage's output, when present,
// is printed exactly once after the pipeline finishes.
//
// Stages execute sequentially with fully buffered handoff, not as
// concurrent OS pipes.
func Execute(h host.OS, p Pipeline) Outcome {
	exitCode := 0
	var previous *string

	for _, stage := range p.Stages {
		result := builtins.Resolve(stage.Name)(h, stage.Args, previous)
		if result.Terminate {
			return Outcome{Terminated: true}
		}

		exitCode = result.ExitCode
		previous = result.Output

		if exitCode != 0 {
			break
		}
	}

	if previous != nil {
		fmt.Fprintln(h.Stdout(), *previous)
	}

	return Outcome{ExitCode: exitCode}
}

// Package hosttest provides a deterministic in-memory host.OS for tests.
package hosttest

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/tansell/minishell/core/host"
)

// DefaultWorkingDir is the working directory reported by test hosts.
const DefaultWorkingDir = "/home/tester"

// Host is a host.OS backed entirely by memory. The output buffers are
// exposed so tests can assert on the streams a command wrote to.
type Host struct {
	*host.MapEnv

	Dir    string
	FS     afero.Fs
	In     io.Reader
	Out    bytes.Buffer
	ErrOut bytes.Buffer
}

var _ host.OS = (*Host)(nil)

// New creates a Host with an empty environment, an empty MemMapFs and an
// empty stdin.
func New() *Host {
	return &Host{
		MapEnv: host.NewMapEnv(),
		Dir:    DefaultWorkingDir,
		FS:     afero.NewMemMapFs(),
		In:     strings.NewReader(""),
	}
}

func (h *Host) Stdin() io.Reader  { return h.In }
func (h *Host) Stdout() io.Writer { return &h.Out }
func (h *Host) Stderr() io.Writer { return &h.ErrOut }

func (h *Host) Getwd() (string, error) { return h.Dir, nil }

func (h *Host) Fs() afero.Fs { return h.FS }

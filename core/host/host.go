// Package host bundles the process-wide facilities a shell session may
// touch: environment variables, standard streams, the working directory
// and the filesystem.
package host

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Env is the environment variable surface visible to a session.
type Env interface {
	// Getenv returns the value for key, or "" if unset.
	Getenv(key string) string
	// LookupEnv returns the value for key and whether it was set.
	LookupEnv(key string) (string, bool)
	// Setenv sets key to value.
	Setenv(key, value string) error
	// Environ returns the environment as a list of KEY=value strings.
	Environ() []string
}

// OS is the view of the operating system handed to every pipeline stage.
//
// Production sessions bind the real process environment and filesystem,
// SSH sessions and tests bind in-memory replacements.
type OS interface {
	Env

	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer

	// Getwd returns the absolute path of the working directory.
	Getwd() (string, error)

	// Fs returns the filesystem file arguments resolve against.
	Fs() afero.Fs
}

type shellOS struct {
	Env

	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getwd  func() (string, error)
}

var _ OS = (*shellOS)(nil)

// New assembles an OS from its parts.
func New(env Env, fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer, getwd func() (string, error)) OS {
	return &shellOS{
		Env:    env,
		fs:     fs,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		getwd:  getwd,
	}
}

// System returns an OS bound to the real process: live environment,
// OS filesystem and the standard streams.
func System() OS {
	return New(systemEnv{}, afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr, os.Getwd)
}

func (s *shellOS) Stdin() io.Reader  { return s.stdin }
func (s *shellOS) Stdout() io.Writer { return s.stdout }
func (s *shellOS) Stderr() io.Writer { return s.stderr }

func (s *shellOS) Getwd() (string, error) { return s.getwd() }

func (s *shellOS) Fs() afero.Fs { return s.fs }

// systemEnv is an Env backed by the real process environment.
type systemEnv struct{}

var _ Env = systemEnv{}

func (systemEnv) Getenv(key string) string { return os.Getenv(key) }

func (systemEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (systemEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

func (systemEnv) Environ() []string { return os.Environ() }

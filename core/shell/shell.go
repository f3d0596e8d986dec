package shell

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/tansell/minishell/core/config"
	"github.com/tansell/minishell/core/host"
	"github.com/tansell/minishell/core/logger"
)

// DefaultPrompt is used when the configuration does not set one.
const DefaultPrompt = "> "

var (
	motdColor   = color.New(color.FgCyan, color.Bold)
	noticeColor = color.New(color.FgYellow)
)

// Options tune a Shell for its frontend.
type Options struct {
	// IsTerminal reports whether the session is attached to a PTY.
	// Defaults to detecting the local terminal.
	IsTerminal func() bool
	// Width returns the terminal width in columns.
	Width func() int
	// Log records session events. Defaults to discarding them.
	Log *logger.SessionLogger
}

// Shell drives the read-eval-print loop of one session.
type Shell struct {
	host       host.OS
	cfg        *config.Configuration
	readline   *readline.Instance
	log        *logger.SessionLogger
	isTerminal func() bool
}

// New builds a Shell reading from and writing to the host's streams.
// Environment presets from the configuration are applied immediately.
func New(h host.OS, cfg *config.Configuration, opts Options) (*Shell, error) {
	for key, value := range cfg.Env {
		if err := h.Setenv(key, value); err != nil {
			return nil, err
		}
	}

	rlCfg := &readline.Config{
		HistoryFile:    cfg.HistoryFile,
		Stdin:          readline.NewCancelableStdin(h.Stdin()),
		Stdout:         h.Stdout(),
		Stderr:         h.Stderr(),
		FuncGetWidth:   opts.Width,
		FuncIsTerminal: opts.IsTerminal,
	}

	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	sessionLog := opts.Log
	if sessionLog == nil {
		sessionLog = logger.Nop().NewSession()
	}

	return &Shell{
		host:     h,
		cfg:      cfg,
		readline: rl,
		log:      sessionLog,
		// Init fills in terminal detection when the caller didn't.
		isTerminal: rlCfg.FuncIsTerminal,
	}, nil
}

func (s *Shell) prompt() string {
	prompt := s.cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return prompt
}

// colorize applies c only when the session has a terminal attached.
func (s *Shell) colorize(c *color.Color, text string) string {
	if s.isTerminal != nil && s.isTerminal() {
		return c.Sprint(text)
	}
	return text
}

// Run reads lines until the session ends: on `exit`, on end of input, or
// on interrupt. Each line is parsed, executed and its exit code reported;
// parse errors are reported and the loop re-prompts.
func (s *Shell) Run() error {
	if s.cfg.Motd != "" {
		fmt.Fprintln(s.host.Stdout(), s.colorize(motdColor, s.cfg.Motd))
	}

	_ = s.log.SessionStart()
	defer func() { _ = s.log.SessionEnd() }()

	for {
		s.readline.SetPrompt(s.prompt())
		line, err := s.readline.Readline()

		switch {
		case err == io.EOF:
			fmt.Fprintln(s.host.Stdout(), s.colorize(noticeColor, "\nSession terminated."))
			return nil

		case err == readline.ErrInterrupt:
			fmt.Fprintln(s.host.Stdout(), s.colorize(noticeColor, "\nInterrupt received, closing..."))
			return nil

		case err != nil:
			log.Printf("readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue
		}

		pipeline, err := Parse(line, s.host.Getenv)
		if err != nil {
			fmt.Fprintf(s.host.Stderr(), "minishell: %v\n", err)
			continue
		}

		outcome := Execute(s.host, pipeline)
		if outcome.Terminated {
			fmt.Fprintln(s.host.Stdout(), s.colorize(noticeColor, "`exit` received, closing..."))
			return nil
		}

		_ = s.log.Command(line, outcome.ExitCode)
		fmt.Fprintf(s.host.Stdout(), "Exit code: %d\n", outcome.ExitCode)
	}
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.readline.Close()
}

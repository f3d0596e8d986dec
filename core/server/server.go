// Package server exposes the shell to SSH clients.
package server

import (
	"context"
	"fmt"
	"os"

	"github.com/gliderlabs/ssh"
	"github.com/spf13/afero"
	gossh "golang.org/x/crypto/ssh"

	"github.com/tansell/minishell/core/config"
	"github.com/tansell/minishell/core/host"
	"github.com/tansell/minishell/core/logger"
	"github.com/tansell/minishell/core/shell"
)

type sshContextKey struct {
	name string
}

var (
	// contextAuthPassword holds the password the client sent.
	contextAuthPassword = sshContextKey{"auth-password"}
	// contextAuthPublicKey holds the fingerprint of the public key the
	// client offered.
	contextAuthPublicKey = sshContextKey{"auth-public-key"}
)

// Server runs shell sessions for SSH connections.
type Server struct {
	cfg       *config.Configuration
	log       *logger.Logger
	sshServer *ssh.Server
}

// New builds a Server listening on the configured port with the
// configured host key. Any password is accepted; credentials are
// recorded in the event log.
func New(cfg *config.Configuration, log *logger.Logger) (*Server, error) {
	srv := &Server{cfg: cfg, log: log}

	srv.sshServer = &ssh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.SSHPort),
		Handler: srv.handle,
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			ctx.SetValue(contextAuthPassword, password)
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			ctx.SetValue(contextAuthPublicKey, gossh.FingerprintSHA256(key))
			return false
		},
	}

	keyPem, err := cfg.HostKeyPem()
	if err != nil {
		return nil, fmt.Errorf("loading host key: %w", err)
	}
	if err := srv.sshServer.SetOption(ssh.HostKeyPEM(keyPem)); err != nil {
		return nil, err
	}

	return srv, nil
}

// ListenAndServe blocks serving connections until Shutdown is called.
func (s *Server) ListenAndServe() error {
	return s.sshServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.sshServer.Shutdown(ctx)
}

func (s *Server) handle(sess ssh.Session) {
	sessionLog := s.log.NewSession()

	password, _ := sess.Context().Value(contextAuthPassword).(string)
	publicKey, _ := sess.Context().Value(contextAuthPublicKey).(string)
	_ = sessionLog.Login(sess.User(), sess.RemoteAddr().String(), password, publicKey)

	env := host.NewMapEnvFromEnviron(sess.Environ())
	_ = env.Setenv("USER", sess.User())

	pty, winch, isPty := sess.Pty()
	width := pty.Window.Width
	go func() {
		for window := range winch {
			width = window.Width
		}
	}()

	h := host.New(env, afero.NewOsFs(), sess, sess, sess.Stderr(), os.Getwd)

	sh, err := shell.New(h, s.cfg, shell.Options{
		IsTerminal: func() bool { return isPty },
		Width:      func() int { return width },
		Log:        sessionLog,
	})
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "minishell: %v\n", err)
		_ = sess.Exit(1)
		return
	}
	defer sh.Close()

	_ = sh.Run()
	_ = sess.Exit(0)
}

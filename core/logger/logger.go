// Package logger captures session interaction events as newline delimited
// JSON so sessions can be audited after the fact.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// EventKind labels one entry in the event log.
type EventKind string

const (
	EventSessionStart EventKind = "session_start"
	EventSessionEnd   EventKind = "session_end"
	EventCommand      EventKind = "command"
	EventLogin        EventKind = "login"
)

// Entry is one event log record.
type Entry struct {
	TimestampMicros int64     `json:"timestamp_micros"`
	SessionID       string    `json:"session_id"`
	Kind            EventKind `json:"kind"`

	// Command fields.
	Line     string `json:"line,omitempty"`
	ExitCode int    `json:"exit_code,omitempty"`

	// Login fields.
	User            string `json:"user,omitempty"`
	RemoteAddr      string `json:"remote_addr,omitempty"`
	Password        string `json:"password,omitempty"`
	PublicKeySHA256 string `json:"public_key_sha256,omitempty"`
}

// Recorder stores entries in an external datastore.
type Recorder func(e *Entry) error

// Logger records interaction events.
type Logger struct {
	Record Recorder
}

// NewJSONLines creates a Logger that writes one JSON object per line.
func NewJSONLines(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Entry) error {
			entry, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Nop creates a Logger that discards every entry.
func Nop() *Logger {
	return &Logger{Record: func(e *Entry) error { return nil }}
}

// NewSession creates a logger with an attached random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger records events for a single session.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

func (s *SessionLogger) record(e *Entry) error {
	e.TimestampMicros = time.Now().UnixNano() / int64(time.Microsecond)
	e.SessionID = s.sessionID
	return s.logger.Record(e)
}

// SessionStart records the beginning of a session.
func (s *SessionLogger) SessionStart() error {
	return s.record(&Entry{Kind: EventSessionStart})
}

// SessionEnd records the end of a session.
func (s *SessionLogger) SessionEnd() error {
	return s.record(&Entry{Kind: EventSessionEnd})
}

// Command records one executed input line and its final exit code.
func (s *SessionLogger) Command(line string, exitCode int) error {
	return s.record(&Entry{Kind: EventCommand, Line: line, ExitCode: exitCode})
}

// Login records an authentication attempt against the SSH frontend.
func (s *SessionLogger) Login(user, remoteAddr, password, publicKeySHA256 string) error {
	return s.record(&Entry{
		Kind:            EventLogin,
		User:            user,
		RemoteAddr:      remoteAddr,
		Password:        password,
		PublicKeySHA256: publicKeySHA256,
	})
}

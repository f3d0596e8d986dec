// Package config loads and validates the shell's configuration directory.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name of the configuration inside the
	// config directory.
	ConfigurationName = "config.yaml"
	// HostKeyName is the default file name of the SSH host key PEM.
	HostKeyName = "host_key"
	// AppLogName is the file name of the newline delimited JSON event log.
	AppLogName = "app.log"
)

// Configuration for the shell and its SSH frontend.
type Configuration struct {
	configDir string

	// Prompt shown before every input line.
	Prompt string `json:"prompt" validate:"required"`
	// Motd is printed once when a session starts. Empty disables it.
	Motd string `json:"motd"`
	// HistoryFile is where readline persists history. Empty disables it.
	HistoryFile string `json:"history_file"`
	// Env holds environment variables applied at session start.
	Env map[string]string `json:"env"`
	// SSHPort is the TCP port `serve` listens on.
	SSHPort int `json:"ssh_port" validate:"gte=0,lte=65535"`
	// HostKey is the path of the SSH host key PEM, relative to the
	// config directory.
	HostKey string `json:"host_key"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Dir returns the configuration directory.
func (c *Configuration) Dir() string {
	return c.configDir
}

// HostKeyPem returns the bytes of the SSH host key.
func (c *Configuration) HostKeyPem() ([]byte, error) {
	return os.ReadFile(filepath.Join(c.configDir, c.HostKey))
}

// OpenAppLog opens the event log in an append only state.
func (c *Configuration) OpenAppLog() (*os.File, error) {
	return os.OpenFile(filepath.Join(c.configDir, AppLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Default returns the embedded default configuration, rooted at the
// current directory.
func Default() *Configuration {
	out := defaultConfig()
	out.configDir = "."
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

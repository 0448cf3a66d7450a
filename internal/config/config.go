package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config is the optional user configuration, stored as JSON with comments
// (HuJSON) so the file can document itself.
type Config struct {
	// File is the activity log location. Overridden by --file and the
	// WORKLOG_FILE environment variable.
	File string `json:"file,omitempty"`
	// Editor is the command `worklog edit` launches. Overridden by
	// --editor and $EDITOR.
	Editor string `json:"editor,omitempty"`
}

// EnvFile is the environment variable naming the activity log file.
const EnvFile = "WORKLOG_FILE"

// DefaultLogFile is used when neither flag, environment variable, nor config
// file name a log.
func DefaultLogFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".worklog", "log.txt"), nil
}

// configTemplate is the annotated config written on first run.
const configTemplate = `// worklog configuration.
// Comments are allowed in this file; edit it to customise worklog.
{
  // Path of the activity log. The --file flag and the WORKLOG_FILE
  // environment variable take precedence over this setting.
  // "file": "/home/me/.worklog/log.txt",

  // Command used by worklog edit. The --editor flag and $EDITOR take
  // precedence over this setting.
  // "editor": "vim"
}
`

// Path returns the config file location: $XDG_CONFIG_HOME/worklog/config.json,
// falling back to ~/.config/worklog/config.json. Empty when no home directory
// can be determined.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "worklog", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "worklog", "config.json")
}

// Load reads the config at path. On first run the annotated template is
// written so users can discover the options. A missing or empty path yields
// the zero config; a present but invalid file is an error.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not create config file %s: %v\n", path, writeErr)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

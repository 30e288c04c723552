package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds everything the binaries need to start.
type Settings struct {
	SSH    SSHSettings   `yaml:"ssh"`
	Web    WebSettings   `yaml:"web"`
	Scores ScoreSettings `yaml:"scores"`
	Log    LogSettings   `yaml:"log"`
	Input  InputSettings `yaml:"input"`
}

// SSHSettings configures the SSH game server.
type SSHSettings struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
	// IdleTimeout disconnects sessions without input for this long.
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebSettings configures the landing page server.
type WebSettings struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	DisplayHost string `yaml:"display_host"` // SSH host shown to visitors
}

// ScoreSettings configures best-score persistence.
type ScoreSettings struct {
	Path string `yaml:"path"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level string `yaml:"level"`
}

// InputSettings tunes terminal input handling.
type InputSettings struct {
	// KeyHold is how long a key counts as held after its last byte arrived.
	// Terminals only report presses, so this bridges key-repeat gaps.
	KeyHold time.Duration `yaml:"key_hold"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		SSH: SSHSettings{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
			IdleTimeout: 2 * time.Minute,
		},
		Web: WebSettings{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
		Scores: ScoreSettings{Path: "scores.yaml"},
		Log:    LogSettings{Level: "info"},
		Input:  InputSettings{KeyHold: 120 * time.Millisecond},
	}
}

// Load builds settings from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist) and environment overrides.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	s.SSH.Host = GetEnv("SSH_HOST", s.SSH.Host)
	s.SSH.Port = GetEnv("SSH_PORT", s.SSH.Port)
	s.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", s.SSH.HostKeyPath)
	s.Web.Host = GetEnv("WEB_HOST", s.Web.Host)
	s.Web.Port = GetEnv("WEB_PORT", s.Web.Port)
	s.Web.DisplayHost = GetEnv("SSH_DISPLAY_HOST", s.Web.DisplayHost)
	s.Scores.Path = GetEnv("SCORES_PATH", s.Scores.Path)
	s.Log.Level = GetEnv("LOG_LEVEL", s.Log.Level)

	if v, ok := os.LookupEnv("SSH_IDLE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Settings{}, fmt.Errorf("SSH_IDLE_TIMEOUT: %w", err)
		}
		s.SSH.IdleTimeout = d
	}
	if v, ok := os.LookupEnv("KEY_HOLD_MS"); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("KEY_HOLD_MS: %w", err)
		}
		s.Input.KeyHold = time.Duration(ms) * time.Millisecond
	}

	if s.Input.KeyHold <= 0 {
		return Settings{}, fmt.Errorf("input.key_hold must be positive, got %s", s.Input.KeyHold)
	}
	return s, nil
}

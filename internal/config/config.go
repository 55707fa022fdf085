package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is the config file looked up in the working directory.
	DefaultPath = ".docsmith.yaml"

	defaultOutputDir       = "."
	defaultFileName        = "README.md"
	defaultTemplatesDir    = "templates"
	defaultRefreshInterval = 250 * time.Millisecond
	defaultLogLevel        = "info"
	minRefreshInterval     = 10 * time.Millisecond
)

// Config holds startup settings. Zero values are filled from defaults by Default.
type Config struct {
	OutputDir       string              `yaml:"output_dir"`
	FileName        string              `yaml:"file_name"`
	TemplatesDir    string              `yaml:"templates_dir"`
	RefreshInterval time.Duration       `yaml:"refresh_interval"`
	LogFile         string              `yaml:"log_file,omitempty"`
	LogLevel        string              `yaml:"log_level,omitempty"`
	NoColor         bool                `yaml:"no_color,omitempty"`
	Keys            map[string][]string `yaml:"keys,omitempty"` // action -> keys
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:       defaultOutputDir,
		FileName:        defaultFileName,
		TemplatesDir:    defaultTemplatesDir,
		RefreshInterval: defaultRefreshInterval,
		LogLevel:        defaultLogLevel,
	}
}

// Load reads path on top of the defaults. A missing file is only an error when
// required is set.
func Load(path string, required bool) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config YAML: %w", err)
	}
	return c, nil
}

// Resolve picks the config file: an explicit path wins, then $DOCSMITH_CONFIG, then
// DefaultPath. The boolean reports whether the file must exist.
func Resolve(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if env, ok := os.LookupEnv("DOCSMITH_CONFIG"); ok && strings.TrimSpace(env) != "" {
		return env, true
	}
	return DefaultPath, false
}

// ApplyEnv overlays DOCSMITH_* environment variables and NO_COLOR.
func (c *Config) ApplyEnv() error {
	readString("DOCSMITH_OUTPUT_DIR", &c.OutputDir)
	readString("DOCSMITH_FILE_NAME", &c.FileName)
	readString("DOCSMITH_TEMPLATES_DIR", &c.TemplatesDir)
	readString("DOCSMITH_LOG_FILE", &c.LogFile)
	readString("DOCSMITH_LOG_LEVEL", &c.LogLevel)
	if raw, ok := os.LookupEnv("DOCSMITH_REFRESH_INTERVAL"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("DOCSMITH_REFRESH_INTERVAL: %w", err)
		}
		c.RefreshInterval = d
	}
	if raw, ok := os.LookupEnv("NO_COLOR"); ok && raw != "" {
		c.NoColor = true
	}
	if raw, ok := os.LookupEnv("DOCSMITH_NO_COLOR"); ok {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("DOCSMITH_NO_COLOR: %w", err)
		}
		c.NoColor = v
	}
	return nil
}

func readString(key string, dst *string) {
	if raw, ok := os.LookupEnv(key); ok && strings.TrimSpace(raw) != "" {
		*dst = strings.TrimSpace(raw)
	}
}

// Validate checks the settings the editor relies on.
func (c Config) Validate() error {
	name := strings.TrimSpace(c.FileName)
	if name == "" {
		return fmt.Errorf("file name must not be empty")
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("file name %q must not contain a directory", c.FileName)
	}
	if c.RefreshInterval < minRefreshInterval {
		return fmt.Errorf("refresh interval %s is below %s", c.RefreshInterval, minRefreshInterval)
	}
	return nil
}

// OutputPath is the document destination.
func (c Config) OutputPath() string { return filepath.Join(c.OutputDir, c.FileName) }

// MarshalYAML writes the refresh interval as a duration string ("250ms"); the
// decoder does not accept bare nanosecond integers for time.Duration.
func (c Config) MarshalYAML() (interface{}, error) {
	return struct {
		OutputDir       string              `yaml:"output_dir"`
		FileName        string              `yaml:"file_name"`
		TemplatesDir    string              `yaml:"templates_dir"`
		RefreshInterval string              `yaml:"refresh_interval"`
		LogFile         string              `yaml:"log_file,omitempty"`
		LogLevel        string              `yaml:"log_level,omitempty"`
		NoColor         bool                `yaml:"no_color,omitempty"`
		Keys            map[string][]string `yaml:"keys,omitempty"`
	}{
		OutputDir:       c.OutputDir,
		FileName:        c.FileName,
		TemplatesDir:    c.TemplatesDir,
		RefreshInterval: c.RefreshInterval.String(),
		LogFile:         c.LogFile,
		LogLevel:        c.LogLevel,
		NoColor:         c.NoColor,
		Keys:            c.Keys,
	}, nil
}

// Save writes c as YAML.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for punch, stored in ~/.punchclock/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// DataFile is the sheet location. Empty means the built-in default
	// (~/.punchclock/sheet.json). The PUNCH_SHEET environment variable
	// takes precedence over this setting.
	DataFile string `json:"data_file"`
	// Color controls colored output: "auto", "always" or "never".
	Color string `json:"color"`
}

// DefaultColor is the color mode used when none is configured.
const DefaultColor = "auto"

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		DataFile: "",
		Color:    DefaultColor,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// punch configuration – ~/.punchclock/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise punch behaviour.
{
  // Location of the punch sheet (the JSON file holding all tracked entries).
  // Leave empty to use ~/.punchclock/sheet.json.
  // The PUNCH_SHEET environment variable overrides this setting.
  "data_file": "",

  // Colored output: "auto" colors only when stdout is a terminal,
  // "always" and "never" force it on or off.
  // The --color flag overrides this setting.
  "color": "auto"
}
`

// configFilePath returns the path to ~/.punchclock/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".punchclock", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.punchclock/config.json, creating it with annotated defaults
// on first run. The returned Config is usable even when err is non-nil, so
// a broken config file never blocks tracking.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. Lines starting with // are treated as
// comments and stripped before JSON parsing.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

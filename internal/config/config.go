// Package config loads the optional quorlin.yaml project file: per
// spec.md §6.5 the compiler itself persists nothing, but a project may
// pin a default target or opt into warnings-as-errors without repeating
// it on every invocation. An optimize setting is parsed into Optimize,
// but no CLI command reads it. Grounded on the teacher's project-level config-by-
// convention absence (go-dws has none) and the rest of the retrieval
// pack's use of goccy/go-yaml for exactly this kind of small settings
// file.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// DefaultFileName is the project config file CLI commands look for in
// the current working directory, never required.
const DefaultFileName = "quorlin.yaml"

// Config is the full set of project-level settings a quorlin.yaml file
// may declare. Every field is optional; the zero value is "CLI flags
// decide everything", matching spec.md's "persisted state: none for the
// compiler itself" framing.
type Config struct {
	Target           string `yaml:"target"`
	WarningsAsErrors bool   `yaml:"warnings_as_errors"`
	Optimize         bool   `yaml:"optimize"`
}

// Load reads and parses path. A missing file is not an error: it
// returns the zero Config, so callers that always call Load need no
// special-casing for projects with no quorlin.yaml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault looks for DefaultFileName in dir.
func LoadDefault(dir string) (Config, error) {
	return Load(filepath.Join(dir, DefaultFileName))
}

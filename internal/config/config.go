// Package config loads the optional .monkeyrc.yaml that pins a REPL
// history file path and a startup prelude script.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const fileName = ".monkeyrc.yaml"

// Config is the shape of .monkeyrc.yaml. Both fields are optional;
// the zero value is a valid, fully-disabled configuration.
type Config struct {
	HistoryFile string `yaml:"history_file"`
	Prelude     string `yaml:"prelude"`
}

// Load looks for .monkeyrc.yaml first in the working directory, then
// in the user's home directory. A missing file is not an error — it
// returns the zero Config. Only a malformed file or an I/O error other
// than "not found" is reported.
func Load() (*Config, error) {
	candidates := []string{}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, fileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, fileName))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	return &Config{}, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the YAML defaults file. Every field is optional; pointer fields
// distinguish "absent" from an explicit false. Command-line flags always
// take precedence over file values.
type File struct {
	Extensions []string `yaml:"extensions"`
	Pattern    string   `yaml:"pattern"`
	Target     string   `yaml:"target_pattern"`
	Join       string   `yaml:"join"`
	Reversed   *bool    `yaml:"reversed"`
	NoDouble   *bool    `yaml:"no_double"`
	KeepGaps   *bool    `yaml:"keep_gaps"`
	Force      *bool    `yaml:"force"`
	Verbose    *bool    `yaml:"verbose"`
}

// DefaultFilePath returns the conventional defaults file location under the
// user configuration directory.
func DefaultFilePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "page-renumber", "config.yaml"), nil
}

// LoadFile reads and decodes a defaults file. A missing file at the default
// location is not an error; callers pass explicit=true for a user-supplied
// --config path, where absence is reported.
func LoadFile(path string, explicit bool) (*File, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &f, nil
}

// Apply overlays the file's present values onto cfg. The changed callback
// reports whether a flag was set on the command line; set flags win over
// the file.
func (f *File) Apply(cfg *Config, changed func(name string) bool) {
	if len(f.Extensions) > 0 && !changed("ext") {
		cfg.Extensions = f.Extensions
	}
	if f.Pattern != "" && !changed("pattern") {
		cfg.Pattern = f.Pattern
	}
	if f.Target != "" && !changed("target-pattern") {
		cfg.TargetPattern = f.Target
	}
	if f.Join != "" && !changed("join") {
		cfg.Join = f.Join
	}
	if f.Reversed != nil && !changed("reversed") {
		cfg.Reversed = *f.Reversed
	}
	if f.NoDouble != nil && !changed("no-double") {
		cfg.NoDouble = *f.NoDouble
	}
	if f.KeepGaps != nil && !changed("keep-gaps") {
		cfg.KeepGaps = *f.KeepGaps
	}
	if f.Force != nil && !changed("force") {
		cfg.Force = *f.Force
	}
	if f.Verbose != nil && !changed("verbose") {
		cfg.Verbose = *f.Verbose
	}
}

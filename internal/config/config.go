// Package config holds the immutable run configuration: defaults,
// validation, and the optional YAML defaults file. The command line builds
// one Config per invocation and threads it through every component; nothing
// mutates it after Validate.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the full configuration of one renumber run.
//
// Ini, Fin and Delta stay raw strings here: "auto" bounds and equation
// increments are resolved against the scan result, not at parse time.
type Config struct {
	// Dir is the directory holding the pages.
	Dir string

	// Positional arguments.
	Ini   string // integer or "auto"
	Fin   string // integer or "auto"
	Delta string // signed integer or "[ref]=value"

	// Extensions registered for scanning, without dots.
	Extensions []string

	// Templates. TargetPattern defaults to Pattern; DoublePattern, when
	// set, replaces the spread template derived from Pattern+Join;
	// SecondPattern overrides the width policy of the spread's second
	// number; TargetDoublePattern does the same on the target side.
	Pattern             string
	TargetPattern       string
	Join                string
	DoublePattern       string
	TargetDoublePattern string
	SecondPattern       string

	// Behavior switches.
	Reversed    bool // spread files print the second number first
	NoDouble    bool // disable spread handling entirely
	NoOffset    bool // skip the gap-offset second pass
	KeepGaps    bool // trust existing numbering gaps instead of inserting
	DryRun      bool
	Force       bool // overwrite colliding targets
	Interactive bool // ask before overwriting colliding targets

	// Output.
	Verbose bool
	Quiet   bool
	JSON    bool // print the summary as JSON
}

// Default returns the configuration an invocation starts from before the
// defaults file and command line are applied.
func Default() Config {
	return Config{
		Dir:        ".",
		Extensions: []string{"jpg", "jpeg", "png"},
		Pattern:    "%03d",
		Join:       "-",
	}
}

// Validate checks cross-field consistency and normalizes the extension
// list (lowercase, no leading dot, duplicates removed).
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New("work directory must not be empty")
	}
	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}
	if c.Force && c.Interactive {
		return errors.New("--force and --interactive are mutually exclusive")
	}

	seen := map[string]bool{}
	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e == "" {
			return fmt.Errorf("empty extension in %v", c.Extensions)
		}
		if !seen[e] {
			seen[e] = true
			exts = append(exts, e)
		}
	}
	c.Extensions = exts

	if c.TargetPattern == "" {
		c.TargetPattern = c.Pattern
	}
	return nil
}

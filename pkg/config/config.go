// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/tabdiff/modules/tablediff/color"
)

const (
	// ColorsSection maps color keys such as "add" or "changed" to color names.
	ColorsSection = "colors"
)

// Config holds default flag values read from a TOML file. Keys at the top
// level apply to every command; a table named after a command applies to
// that command only and wins over the top level.
//
//	expand-env = true
//	format = "table"
//
//	[rows]
//	ignore-case = false
//	max-rows = 200
//
//	[colors]
//	changed = "bold-red"
type Config struct {
	ExpandEnv bool
	global    map[string]any
	sections  map[string]map[string]any
}

// DefaultPath returns $XDG_CONFIG_HOME/tabdiff.toml, falling back to
// ~/.config/tabdiff.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tabdiff.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tabdiff.toml")
}

// Decode parses a configuration. When the document sets expand-env, $VAR
// and ${VAR} references in string values are replaced from the environment.
func Decode(r io.Reader) (*Config, error) {
	var raw map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c := &Config{
		global:   make(map[string]any),
		sections: make(map[string]map[string]any),
	}
	if v, ok := raw["expand-env"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("config key 'expand-env' must be a boolean, got %T", v)
		}
		c.ExpandEnv = b
		delete(raw, "expand-env")
	}
	for k, v := range raw {
		if table, ok := v.(map[string]any); ok {
			section := make(map[string]any, len(table))
			for sk, sv := range table {
				section[sk] = c.expand(sv)
			}
			c.sections[k] = section
			continue
		}
		c.global[k] = c.expand(v)
	}
	return c, nil
}

func (c *Config) expand(v any) any {
	if s, ok := v.(string); ok && c.ExpandEnv {
		return os.ExpandEnv(s)
	}
	return v
}

// Load reads the configuration at path. A missing file yields an empty
// configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	fd, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	c, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Lookup returns the value of key for command section, falling back to the
// top level.
func (c *Config) Lookup(section, key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	if s, ok := c.sections[section]; ok {
		if v, ok := s[key]; ok {
			return v, true
		}
	}
	v, ok := c.global[key]
	return v, ok
}

// Sections lists the names of the tables in the document.
func (c *Config) Sections() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.sections))
	for k := range c.sections {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Colors returns the default color configuration with the overrides of the
// colors table applied.
func (c *Config) Colors() (color.ColorConfig, error) {
	var options []color.ColorConfigOption
	if c != nil {
		for k, v := range c.sections[ColorsSection] {
			name, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("color '%s' must be a string, got %T", k, v)
			}
			code, err := color.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("color '%s': %w", k, err)
			}
			options = append(options, color.WithColor(color.ColorKey(k), code))
		}
	}
	return color.NewColorConfig(options...), nil
}

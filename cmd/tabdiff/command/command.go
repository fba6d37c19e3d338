// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antgroup/tabdiff/modules/tablediff/color"
	"github.com/antgroup/tabdiff/modules/trace"
	"github.com/antgroup/tabdiff/pkg/config"
	"github.com/antgroup/tabdiff/pkg/version"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDiffer is returned under --exit-code when the inputs differ.
	ErrDiffer = errors.New("inputs differ")
)

type Globals struct {
	Verbose bool            `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version VersionFlag     `short:"v" name:"version" help:"Show version number and quit"`
	Config  kong.ConfigFlag `short:"c" name:"config" help:"Location of the config file, defaults to ~/.config/tabdiff.toml"`
	Color   string          `name:"color" help:"When to color the output: auto, always or never" enum:"auto,always,never" default:"auto"`

	settings *Settings
	stdout   io.Writer
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

// Bind attaches the loaded configuration. It must be called after parsing.
func (g *Globals) Bind(s *Settings) {
	g.settings = s
}

// Stdout is where reports go unless --output names a file.
func (g *Globals) Stdout() io.Writer {
	if g.stdout != nil {
		return g.stdout
	}
	return os.Stdout
}

// DbgPrint prints to stderr under --verbose.
func (g *Globals) DbgPrint(format string, args ...any) {
	trace.NewDebuger(g.Verbose, stderrIsTerminal()).DbgPrint(format, args...)
}

// ColorConfig returns the configured colors, or nil when the output must
// stay plain.
func (g *Globals) ColorConfig(w io.Writer) color.ColorConfig {
	if !g.useColor(w) {
		return nil
	}
	cc, err := g.settings.Config().Colors()
	if err != nil {
		logrus.Warnf("ignore colors from config: %v", err)
		return color.NewColorConfig()
	}
	return cc
}

func (g *Globals) useColor(w io.Writer) bool {
	switch g.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}

// Settings collects the configuration files kong loaded while parsing.
type Settings struct {
	cfg *config.Config
}

// Config returns the configuration loaded last, so --config wins over the
// default location.
func (s *Settings) Config() *config.Config {
	if s == nil || s.cfg == nil {
		return &config.Config{}
	}
	return s.cfg
}

// Loader decodes a configuration file for kong. Keys at the top level resolve
// global flags, tables named after a command resolve that command's flags.
func (s *Settings) Loader(r io.Reader) (kong.Resolver, error) {
	c, err := config.Decode(r)
	if err != nil {
		return nil, err
	}
	s.cfg = c
	return kong.ResolverFunc(func(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		switch flag.Name {
		case "config", "version", "help":
			return nil, nil
		}
		section := ""
		if parent.Command != nil {
			section = parent.Command.Name
		}
		v, ok := c.Lookup(section, flag.Name)
		if !ok {
			return nil, nil
		}
		return fmt.Sprint(v), nil
	}), nil
}

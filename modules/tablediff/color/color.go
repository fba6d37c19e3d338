// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import (
	"fmt"
	"strings"
)

// ANSI SGR sequences.
const (
	Normal      = ""
	Reset       = "\033[m"
	Bold        = "\033[1m"
	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Blue        = "\033[34m"
	Cyan        = "\033[36m"
	BoldRed     = "\033[1;31m"
	BoldGreen   = "\033[1;32m"
	BoldYellow  = "\033[1;33m"
	Faint       = "\033[2m"
	Reverse     = "\033[7m"
	BgYellow    = "\033[43m"
	ReverseBold = "\033[1;7m"
)

// A ColorKey names one element of the rendered table.
type ColorKey string

const (
	Meta     ColorKey = "meta"     // header and summary lines
	LineNo   ColorKey = "lineNo"   // row numbers
	Keep     ColorKey = "keep"     // unchanged rows
	Delete   ColorKey = "delete"   // rows only in the original table
	Add      ColorKey = "add"      // rows only in the modified table
	Modify   ColorKey = "modify"   // rows changed in place
	Changed  ColorKey = "changed"  // changed cells of a modified row
	Filler   ColorKey = "filler"   // blank side of an added or deleted row
	Same     ColorKey = "same"     // column values present in both tables
	Distinct ColorKey = "distinct" // column values present in one table only
)

// A ColorConfig maps keys to escape sequences. A nil or empty ColorConfig
// corresponds to no color.
type ColorConfig map[ColorKey]string

// A ColorConfigOption sets an option on a ColorConfig.
type ColorConfigOption func(ColorConfig)

// WithColor sets the color for key.
func WithColor(key ColorKey, color string) ColorConfigOption {
	return func(cc ColorConfig) {
		cc[key] = color
	}
}

var defaultColorConfig = ColorConfig{
	Meta:     Bold,
	LineNo:   Faint,
	Keep:     Normal,
	Delete:   Red,
	Add:      Green,
	Modify:   Yellow,
	Changed:  ReverseBold,
	Filler:   Faint,
	Same:     Green,
	Distinct: Red,
}

// NewColorConfig returns the default colors with options applied.
func NewColorConfig(options ...ColorConfigOption) ColorConfig {
	cc := make(ColorConfig, len(defaultColorConfig))
	for key, value := range defaultColorConfig {
		cc[key] = value
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

// Reset returns the ANSI escape sequence to reset the color with key set from
// cc. If no color was set then no reset is needed so it returns the empty
// string.
func (cc ColorConfig) Reset(key ColorKey) string {
	if cc[key] == "" {
		return ""
	}
	return Reset
}

// Paint wraps s in the color of key.
func (cc ColorConfig) Paint(key ColorKey, s string) string {
	c := cc[key]
	if c == "" {
		return s
	}
	return c + s + Reset
}

var namedColors = map[string]string{
	"normal":       Normal,
	"bold":         Bold,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"cyan":         Cyan,
	"bold-red":     BoldRed,
	"bold-green":   BoldGreen,
	"bold-yellow":  BoldYellow,
	"faint":        Faint,
	"reverse":      Reverse,
	"reverse-bold": ReverseBold,
	"bg-yellow":    BgYellow,
}

// Parse resolves a color name such as "bold-red" to its escape sequence.
func Parse(name string) (string, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown color '%s'", name)
}

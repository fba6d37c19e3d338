// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

// NewDebuger returns a Debuger that prints to stderr when verbose is set,
// highlighting each line when color is set.
func NewDebuger(verbose, color bool) Debuger {
	return &debuger{verbose: verbose, color: color, out: os.Stderr}
}

type debuger struct {
	verbose bool
	color   bool
	out     io.Writer
}

func formatDebug(message string, color bool) []byte {
	var buffer bytes.Buffer
	for _, s := range strings.Split(message, "\n") {
		if color {
			_, _ = buffer.WriteString("\x1b[33m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
			continue
		}
		_, _ = buffer.WriteString("* ")
		_, _ = buffer.WriteString(s)
		_ = buffer.WriteByte('\n')
	}
	return buffer.Bytes()
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	_, _ = d.out.Write(formatDebug(fmt.Sprintf(format, args...), d.color))
}

var (
	_ Debuger = &debuger{}
)

// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	minCellWidth = 8
)

func isTerminal(w io.Writer) bool {
	fd, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(fd.Fd()) || isatty.IsCygwinTerminal(fd.Fd())
}

func stderrIsTerminal() bool {
	return isTerminal(os.Stderr)
}

// terminalWidth returns the width of the terminal behind w, 0 when w is not
// a terminal.
func terminalWidth(w io.Writer) int {
	fd, ok := w.(*os.File)
	if !ok || !isTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(fd.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// fitCellWidth splits width between the cells of both sides of a row diff.
// Each cell costs three columns of decoration, each side a line number and a
// separator.
func fitCellWidth(width, columns, lineWidth int) int {
	if width <= 0 || columns <= 0 {
		return 0
	}
	avail := width - 2 - 3 - 2*(lineWidth+2)
	per := avail/(2*columns) - 3
	return max(per, minCellWidth)
}

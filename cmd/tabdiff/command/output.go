// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/antgroup/tabdiff/modules/streamio"
)

// writeOutput runs fn against standard output, or against the file named by
// output, compressing it when the name asks for it.
func writeOutput(g *Globals, output string, fn func(w io.Writer) error) (err error) {
	if output == "" || output == "-" {
		return fn(g.Stdout())
	}
	fd, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	c, _ := streamio.Detect(output)
	zw, err := streamio.NewWriter(fd, c)
	if err != nil {
		return err
	}
	if err := fn(zw); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	maxBarWidth = 80
)

// loadProgress shows one bar per input file while it is read. A nil
// *loadProgress tracks nothing.
type loadProgress struct {
	p     *mpb.Progress
	width int
}

func newLoadProgress(w io.Writer, width int) *loadProgress {
	if width <= 0 || width > maxBarWidth {
		width = maxBarWidth
	}
	return &loadProgress{
		p: mpb.New(
			mpb.WithOutput(w),
			mpb.WithAutoRefresh(),
			mpb.WithWidth(width),
		),
		width: width,
	}
}

// track wraps r so that reads advance a bar named after the input. size is
// the expected byte count, or negative when unknown. done must be called
// once reading has finished.
func (lp *loadProgress) track(name string, size int64, r io.Reader) (io.Reader, func(ok bool)) {
	if lp == nil {
		return r, func(bool) {}
	}
	task := "Loading " + name
	bar := lp.p.New(max(size, -1),
		mpb.BarStyle().Filler("#").Padding(" "),
		mpb.PrependDecorators(
			decor.Name(task, decor.WC{W: len(task) + 1, C: decor.DindentRight}),
			decor.CountersKibiByte("% .2f / % .2f", decor.WCSyncWidth),
		),
		mpb.BarWidth(lp.width),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	proxy := bar.ProxyReader(r)
	return proxy, func(ok bool) {
		if !ok {
			bar.Abort(false)
			return
		}
		bar.SetTotal(-1, true)
	}
}

func (lp *loadProgress) wait() {
	if lp == nil {
		return
	}
	lp.p.Wait()
}

// openInput opens path for reading, "-" meaning standard input, and reports
// its size when known.
func openInput(path string) (io.ReadCloser, int64, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), -1, nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	si, err := fd.Stat()
	if err != nil {
		_ = fd.Close()
		return nil, 0, err
	}
	return fd, si.Size(), nil
}

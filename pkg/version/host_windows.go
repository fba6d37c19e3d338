// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package version

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func kernelRelease() (string, error) {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return fmt.Sprintf("WindowsNT %d.%d.%d", major, minor, build), nil
}

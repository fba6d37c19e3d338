// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var (
	version     = "0.1.0-dev"
	buildCommit string
	buildTime   string
)

// GetVersionString returns a standard version header
func GetVersionString() string {
	commit, built := buildCommit, buildTime
	if commit == "" {
		commit = "none"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s %v (%s), built %v, %s/%s", filepath.Base(os.Args[0]), version, commit, built, runtime.GOOS, runtime.GOARCH)
}

func GetBuildCommit() string {
	return buildCommit
}

// GetVersion returns the semver compatible version number
func GetVersion() string {
	return version
}

// GetGenerator names the producer of report documents.
func GetGenerator() string {
	return "tabdiff/" + version
}

// GetBuildTime returns the time at which the build took place
func GetBuildTime() string {
	return buildTime
}

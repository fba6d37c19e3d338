// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/tabdiff/cmd/tabdiff/command"
	"github.com/antgroup/tabdiff/pkg/config"
	"github.com/antgroup/tabdiff/pkg/version"
	"github.com/sirupsen/logrus"
)

type App struct {
	command.Globals
	Rows    command.Rows    `cmd:"rows" help:"Align the rows of two tables and show added, deleted and modified rows"`
	Columns command.Columns `cmd:"columns" help:"Match the values of one column of each table, ignoring row order"`
	Info    command.Version `cmd:"version" help:"Show build and host details"`
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var app App
	settings := &command.Settings{}
	var paths []string
	if p := config.DefaultPath(); p != "" {
		paths = append(paths, p)
	}
	ctx := kong.Parse(&app,
		kong.Name("tabdiff"),
		kong.Description("tabdiff - compare two tables row by row or column by column"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(settings.Loader, paths...),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)
	app.Globals.Bind(settings)
	now := time.Now()
	if app.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	err := ctx.Run(&app.Globals)
	if app.Verbose {
		app.DbgPrint("time spent: %v", time.Since(now))
	}
	switch {
	case err == nil:
	case errors.Is(err, command.ErrDiffer):
		os.Exit(1)
	default:
		os.Exit(2)
	}
}

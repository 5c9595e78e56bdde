// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/termout"
	"github.com/matt-FFFFFF/termout/cmd/ask"
	"github.com/matt-FFFFFF/termout/cmd/cmdstate"
	"github.com/matt-FFFFFF/termout/cmd/demo"
	"github.com/matt-FFFFFF/termout/cmd/progress"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		progress.ProgressCmd,
		ask.AskCmd,
		demo.DemoCmd,
	},
	Flags:     cmdstate.Flags(),
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "termout",
	Version:   termout.Version + " (" + termout.Commit + ")",
	Description: `termout is a console logger with a single in-place progress bar and a prompt
that holds log lines back while it waits for an answer.`,
	Usage:     "termout demo",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

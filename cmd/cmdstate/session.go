// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/termout/internal/config"
	"github.com/matt-FFFFFF/termout/internal/logger"
	"github.com/matt-FFFFFF/termout/internal/render"
	"github.com/matt-FFFFFF/termout/internal/terminal"
	"github.com/urfave/cli/v3"
)

// Flag names shared by all subcommands.
const (
	ConfigFlag        = "config"
	OutputFileFlag    = "output-file"
	PrintProgressFlag = "print-progress"
	QuietFlag         = "quiet"
)

var (
	// ErrLoadConfig is returned when the configuration file cannot be used.
	ErrLoadConfig = errors.New("failed to load configuration")
	// ErrCreateLogger is returned when the logger rejects the options.
	ErrCreateLogger = errors.New("failed to create logger")
)

// Stdin is the reader prompts take their answers from.
var Stdin io.Reader = os.Stdin

// Flags returns the persistent flags for the root command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      ConfigFlag,
			Aliases:   []string{"c"},
			Usage:     "YAML or HCL configuration file",
			TakesFile: true,
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringFlag{
			Name:      OutputFileFlag,
			Aliases:   []string{"o"},
			Usage:     "Append every log line to this file, overrides the configuration",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:        PrintProgressFlag,
			Usage:       "Mirror progress bar changes to the output file",
			DefaultText: "false",
		},
		&cli.BoolFlag{
			Name:        QuietFlag,
			Aliases:     []string{"q"},
			Usage:       "Do not draw log lines or the progress bar",
			DefaultText: "false",
		},
	}
}

// Session is a logger wired to the terminal for one command run.
type Session struct {
	Log *logger.Logger

	input *terminal.Input
}

// Open loads the configuration named by the flags and creates the logger.
// The caller must Close the session.
func Open(ctx context.Context, cmd *cli.Command) (*Session, error) {
	opts, err := config.Load(cmd.String(ConfigFlag))
	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	if f := cmd.String(OutputFileFlag); f != "" {
		opts.OutputFile = f
	}

	if cmd.IsSet(PrintProgressFlag) {
		opts.PrintProgress = cmd.Bool(PrintProgressFlag)
	}

	var r render.Renderer = render.NewTerminal(cmd.Root().Writer)
	if cmd.Bool(QuietFlag) {
		r = render.Discard{}
	}

	in := terminal.NewInput(Stdin)

	l, err := logger.New(ctx, opts, r, in)
	if err != nil {
		in.Close()
		return nil, errors.Join(ErrCreateLogger, err)
	}

	return &Session{Log: l, input: in}, nil
}

// Close removes the progress bar and stops reading input.
func (s *Session) Close() {
	s.Log.Progress().Remove()
	s.input.Close()
}

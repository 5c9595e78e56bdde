// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress contains the command that runs a simulated task behind a progress bar.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/termout/cmd/cmdstate"
	"github.com/urfave/cli/v3"
)

const (
	stepsFlag = "steps"
	delayFlag = "delay"
	origin    = "progress"
)

// ProgressCmd runs a number of fixed-length steps and reports them on the progress bar.
var ProgressCmd = &cli.Command{
	Name:        "progress",
	Usage:       "Run a simulated task behind a progress bar",
	Description: "Advance the progress bar once per step and log each completed step above it.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:        stepsFlag,
			Aliases:     []string{"n"},
			Usage:       "Number of steps",
			Value:       10,
			DefaultText: "10",
		},
		&cli.DurationFlag{
			Name:        delayFlag,
			Aliases:     []string{"d"},
			Usage:       "Duration of each step",
			Value:       250 * time.Millisecond,
			DefaultText: "250ms",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	steps := cmd.Int(stepsFlag)
	if steps <= 0 {
		return cli.Exit("steps must be greater than zero", 1)
	}

	s, err := cmdstate.Open(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer s.Close()

	bar := s.Log.Progress()
	bar.Create(false)

	start := time.Now()

	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			bar.Remove()
			s.Log.Warn(origin, fmt.Sprintf("stopped after %d of %d steps", i-1, steps))

			return cli.Exit("interrupted", 130)
		case <-time.After(cmd.Duration(delayFlag)):
		}

		bar.Set(float64(i) * 100 / float64(steps))
		s.Log.Infof(origin, "step %d of %d done", i, steps)
	}

	bar.Remove()
	cmdstate.Summary(cmd.Root().Writer, "completed", fmt.Sprintf("%d steps in %s", steps, time.Since(start).Round(time.Millisecond)))

	return nil
}

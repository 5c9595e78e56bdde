// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo contains the command that shows log lines being held back while a question is open.
package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matt-FFFFFF/termout/cmd/cmdstate"
	"github.com/urfave/cli/v3"
)

const (
	stepsFlag   = "steps"
	delayFlag   = "delay"
	timeoutFlag = "timeout"
	origin      = "demo"
	question    = "Keep going? [Y/n] "
)

// DemoCmd runs a progress bar, asks a question half way and keeps logging while it waits.
var DemoCmd = &cli.Command{
	Name:  "demo",
	Usage: "Show the progress bar and a prompt working together",
	Description: `Advance a progress bar and log a line for every step. Half way through a question is asked;
the task keeps running and its log lines are held back until the question is answered or times out.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:        stepsFlag,
			Usage:       "Number of steps",
			Value:       20,
			DefaultText: "20",
		},
		&cli.DurationFlag{
			Name:        delayFlag,
			Usage:       "Duration of each step",
			Value:       200 * time.Millisecond,
			DefaultText: "200ms",
		},
		&cli.DurationFlag{
			Name:        timeoutFlag,
			Usage:       "How long the question waits for an answer",
			Value:       5 * time.Second,
			DefaultText: "5s",
		},
	},
	Action: actionFunc,
}

type reply struct {
	input    string
	answered bool
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	steps := cmd.Int(stepsFlag)
	if steps <= 1 {
		return cli.Exit("steps must be greater than one", 1)
	}

	s, err := cmdstate.Open(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer s.Close()

	var (
		bar     = s.Log.Progress()
		replies = make(chan reply, 1)
		asked   bool
		done    int
	)

	bar.Create(false)

loop:
	for done < steps {
		select {
		case <-ctx.Done():
			break loop
		case r := <-replies:
			if r.answered && strings.EqualFold(r.input, "n") {
				s.Log.Warn(origin, "stopping at the user's request")
				break loop
			}

			continue
		case <-time.After(cmd.Duration(delayFlag)):
		}

		done++

		bar.Increase(100 / float64(steps))
		s.Log.Infof(origin, "step %d of %d done", done, steps)

		if !asked && done == steps/2 {
			asked = true

			s.Log.ReadInput(question, cmd.Duration(timeoutFlag), func(input string, answered bool) {
				if !answered {
					s.Log.Warn(origin, "no answer, carrying on")
				}

				replies <- reply{input: input, answered: answered}
			})
		}
	}

	// The question may still be open when the last step finishes.
	if s.Log.Prompt().Active() {
		select {
		case <-replies:
		case <-ctx.Done():
		}
	}

	if done == steps {
		bar.Set(100)
	}

	bar.Remove()

	w := cmd.Root().Writer
	cmdstate.Summary(w, "completed", fmt.Sprintf("%d of %d steps", done, steps))

	if ctx.Err() != nil {
		cmdstate.Notice(w, "interrupted")
	}

	return nil
}

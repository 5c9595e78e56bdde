// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ask contains the command that asks a single question on the terminal.
package ask

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-FFFFFF/termout/cmd/cmdstate"
	"github.com/matt-FFFFFF/termout/internal/prompt"
	"github.com/urfave/cli/v3"
)

const (
	questionArg = "question"
	timeoutFlag = "timeout"
	origin      = "ask"
)

// Exit codes.
const (
	exitNoResponse = 2
	exitCancelled  = 130
)

// AskCmd asks a question and prints the answer.
var AskCmd = &cli.Command{
	Name:        "ask",
	Usage:       "Ask a question and print the answer",
	Description: "Show QUESTION, wait for one line of input and print it. Exits with code 2 when the timeout elapses first.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      questionArg,
			UsageText: "QUESTION",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:        timeoutFlag,
			Aliases:     []string{"t"},
			Usage:       "Give up after this long, 0 waits forever",
			DefaultText: "0",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	question := cmd.StringArg(questionArg)
	if question == "" {
		return cli.Exit("Please provide a question to ask", 1)
	}

	if !strings.HasSuffix(question, " ") {
		question += " "
	}

	s, err := cmdstate.Open(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer s.Close()

	answer, err := s.Log.Ask(ctx, question, cmd.Duration(timeoutFlag))

	switch {
	case errors.Is(err, prompt.ErrNoResponse):
		s.Log.Warn(origin, "no answer received")
		return cli.Exit("no answer before timeout", exitNoResponse)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return cli.Exit("interrupted", exitCancelled)
	case err != nil:
		return cli.Exit(err.Error(), 1)
	}

	s.Log.Debug(origin, "answer received")
	cmdstate.Summary(cmd.Root().Writer, "answer", answer)

	return nil
}

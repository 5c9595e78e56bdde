// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the termout command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/termout/cmd"
	"github.com/matt-FFFFFF/termout/internal/ctxlog"
	"github.com/matt-FFFFFF/termout/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	// The first signal ends the running command gracefully, the second one cancels everything.
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, stop, cancel)

	err := cmd.RootCmd.Run(runCtx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}

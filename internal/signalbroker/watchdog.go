// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/termout/internal/ctxlog"
)

// Watch reads signals from sigCh until it is closed or ctx is done.
// The first signal of a given type calls stop, the second one of the same type
// calls cancel and closes sigCh. Either func may be nil.
func Watch(ctx context.Context, sigCh chan os.Signal, stop, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
				close(sigCh)

				if cancel != nil {
					cancel()
				}

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, stopping", "signal", sig.String())

			seen[sig] = struct{}{}

			if stop != nil {
				stop()
			}
		}
	}
}

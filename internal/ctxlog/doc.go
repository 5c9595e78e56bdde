// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context for internal diagnostics
// (failed file writes, superseded prompts and so on). It is separate from the
// user-facing logger in package logger.
//
// The default is a pretty handler on stderr. The level comes from the
// TERMOUT_LOG_LEVEL environment variable: DEBUG, INFO, WARN or ERROR, with WARN
// used for anything else.
package ctxlog

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render turns logger, progress bar and prompt events into terminal output.
// Producers only describe what happened (a Kind plus an optional payload); the
// Terminal renderer decides whether that means a new line, an in-place redraw or
// an erase.
package render

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package terminal wraps the two things the logger needs from the terminal:
// the current column width and a line-oriented input stream that can be
// listened to and paused.
package terminal

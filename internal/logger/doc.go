// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger is the user-facing console logger.
//
// Each entry is formatted with the configured message structure, rendered above
// the progress bar and appended to the output file. While a prompt is waiting
// for input, entries are queued by the prompt controller and printed, in order
// and with their original timestamps, once the prompt is answered.
package logger

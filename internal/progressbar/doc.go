// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progressbar tracks the single progress bar a logger can show.
//
// At most one bar exists at a time. Create replaces an existing bar, Set and
// Increase create one implicitly, and Remove is a no-op without a bar. Every
// change is mirrored to the output file (when enabled) before it is rendered,
// so the file never records a state that was not about to be shown.
package progressbar

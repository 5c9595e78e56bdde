// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color holds the ANSI color table used by the logger and the progress bar.
// Output is enabled when NO_COLOR is unset and either FORCE_COLOR is set or stdout
// is a terminal (detected with golang.org/x/term). Tests can override detection
// with SetEnabled.
package color

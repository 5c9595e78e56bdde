// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds what every subcommand shares: the persistent flags,
// the logger session built from them, and the styles used for summaries.
package cmdstate

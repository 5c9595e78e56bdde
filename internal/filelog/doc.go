// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package filelog appends plain text log lines to the configured output file.
package filelog

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"strings"
)

// lineBuffer splits a byte stream into lines. Complete lines keep their
// terminating newline; the trailing partial line is held back until the
// rest of it arrives or flush is called.
// It is not safe for concurrent use; Input guards it with its own mutex.
type lineBuffer struct {
	partial strings.Builder
}

// write consumes data and returns the lines it completed, in order.
func (lb *lineBuffer) write(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	lb.partial.Write(data)
	combined := lb.partial.String()

	idx := strings.LastIndexByte(combined, '\n')
	if idx == -1 {
		return nil
	}

	complete, rest := combined[:idx+1], combined[idx+1:]

	lb.partial.Reset()
	lb.partial.WriteString(rest)

	lines := strings.SplitAfter(complete, "\n")
	// SplitAfter leaves an empty element after the final newline
	return lines[:len(lines)-1]
}

// flush returns the held back partial line, if any, and clears it.
func (lb *lineBuffer) flush() (string, bool) {
	if lb.partial.Len() == 0 {
		return "", false
	}

	line := lb.partial.String()
	lb.partial.Reset()

	return line, true
}

// pending returns the partial line without consuming it.
func (lb *lineBuffer) pending() string {
	return lb.partial.String()
}

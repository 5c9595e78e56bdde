// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Width returns the current column count of stdout.
// It is queried on every call because the window can be resized between frames.
func Width() int {
	return widthOf(int(os.Stdout.Fd()))
}

func widthOf(fd int) int {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return w
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logger

import (
	"time"

	"github.com/matt-FFFFFF/termout/internal/color"
)

// Type is the severity shown in the {type} field.
type Type int

// Entry types.
const (
	Info Type = iota
	Warn
	Error
	Debug
)

var typeNames = map[Type]string{
	Info:  "INFO",
	Warn:  "WARN",
	Error: "ERROR",
	Debug: "DEBUG",
}

var typeColors = map[Type]color.Code{
	Info:  color.FgCyan,
	Warn:  color.FgYellow,
	Error: color.FgRed,
	Debug: color.FgMagenta,
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}

	return "UNKNOWN"
}

// Color returns the color used for t on the terminal.
func (t Type) Color() color.Code {
	if c, ok := typeColors[t]; ok {
		return c
	}

	return color.Reset
}

// Entry is one log call. It carries everything needed to print it later,
// including the time it was made.
type Entry struct {
	Type    Type
	Origin  string
	Message string
	Time    time.Time
}

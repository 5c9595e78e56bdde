// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package msgtemplate

import (
	"regexp"
	"strings"
	"time"
)

// Placeholders recognised in a message structure.
const (
	Animation = "{animation}"
	Type      = "{type}"
	Origin    = "{origin}"
	Date      = "{date}"
	Message   = "{message}"
)

// DateFormat is the layout of the {date} field.
const DateFormat = "2006-01-02 15:04:05"

var (
	leftoverPlaceholder = regexp.MustCompile(`\{(animation|type|origin|date)\}`)
	leadingSeparator    = regexp.MustCompile(`\[\s*\|\s*`)
	trailingSeparator   = regexp.MustCompile(`\s*\|\s*\]`)
	emptyGroup          = regexp.MustCompile(`\[\s*\] ?`)
)

// Fields are the values substituted into a structure. Empty fields are removed.
type Fields struct {
	Animation string
	Type      string
	Origin    string
	Date      string
	Message   string
}

// Format substitutes f into structure and strips every field left empty.
// The message is inserted after cleaning so brackets inside it are never touched.
func Format(structure string, f Fields) string {
	s := structure
	s = fill(s, Animation, f.Animation)
	s = fill(s, Type, f.Type)
	s = fill(s, Origin, f.Origin)
	s = fill(s, Date, f.Date)
	s = clean(s)

	if !strings.Contains(s, Message) {
		return strings.TrimSpace(s)
	}

	s = strings.Replace(s, Message, f.Message, 1)
	s = strings.ReplaceAll(s, Message, "")

	if f.Message == "" {
		s = strings.TrimRight(s, " ")
	}

	return s
}

// RemoveEmptyParams deletes unfilled placeholders and the empty brackets or
// dangling separators they leave behind.
func RemoveEmptyParams(s string) string {
	return strings.TrimSpace(clean(strings.ReplaceAll(s, Message, "")))
}

// Timestamp formats t the way the {date} field expects.
func Timestamp(t time.Time) string {
	return t.Format(DateFormat)
}

func fill(s, placeholder, value string) string {
	if value == "" {
		return s
	}

	return strings.Replace(s, placeholder, value, 1)
}

func clean(s string) string {
	s = leftoverPlaceholder.ReplaceAllString(s, "")
	s = leadingSeparator.ReplaceAllString(s, "[")
	s = trailingSeparator.ReplaceAllString(s, "]")
	s = emptyGroup.ReplaceAllString(s, "")

	return s
}

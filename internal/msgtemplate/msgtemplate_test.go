// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package msgtemplate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const defaultStructure = "[{animation}] [{type} | {origin}] [{date}] {message}"

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		fields    Fields
		want      string
	}{
		{
			name:      "progress line",
			structure: defaultStructure,
			fields: Fields{
				Type:    "PROGRESS",
				Date:    "2022-06-19 12:33:10",
				Message: "Progress: 42%",
			},
			want: "[PROGRESS] [2022-06-19 12:33:10] Progress: 42%",
		},
		{
			name:      "all fields",
			structure: defaultStructure,
			fields: Fields{
				Animation: "*",
				Type:      "INFO",
				Origin:    "main.go",
				Date:      "2022-06-19 12:33:10",
				Message:   "hello",
			},
			want: "[*] [INFO | main.go] [2022-06-19 12:33:10] hello",
		},
		{
			name:      "origin without type",
			structure: defaultStructure,
			fields:    Fields{Origin: "main.go", Message: "hello"},
			want:      "[main.go] hello",
		},
		{
			name:      "brackets in the message are kept",
			structure: defaultStructure,
			fields:    Fields{Type: "INFO", Message: "list: [] [ | ]"},
			want:      "[INFO] list: [] [ | ]",
		},
		{
			name:      "empty message",
			structure: defaultStructure,
			fields:    Fields{Type: "INFO"},
			want:      "[INFO]",
		},
		{
			name:      "structure without message",
			structure: "[{type}]",
			fields:    Fields{Type: "WARN", Message: "ignored"},
			want:      "[WARN]",
		},
		{
			name:      "custom structure",
			structure: "{date} {type}: {message}",
			fields:    Fields{Type: "ERROR", Date: "2022-01-01 00:00:00", Message: "boom"},
			want:      "2022-01-01 00:00:00 ERROR: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.structure, tt.fields))
		})
	}
}

func TestRemoveEmptyParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "nothing to remove", input: "[INFO] hello", want: "[INFO] hello"},
		{name: "all placeholders", input: defaultStructure, want: ""},
		{name: "dangling separator", input: "[INFO | ] hi", want: "[INFO] hi"},
		{name: "leading separator", input: "[ | main.go] hi", want: "[main.go] hi"},
		{name: "unknown braces kept", input: "[{custom}] hi", want: "[{custom}] hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveEmptyParams(tt.input))
		})
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2022, time.June, 19, 12, 33, 10, 999, time.UTC)
	assert.Equal(t, "2022-06-19 12:33:10", Timestamp(ts))
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"
	"sync"

	"github.com/morikuni/aec"
)

var eraseLine = "\r" + aec.EraseLine(aec.EraseModes.All).String()

// Terminal renders events to a line-oriented writer such as os.Stdout.
// The progress bar always occupies the last line without a trailing newline,
// so log lines are written above it and the bar is redrawn underneath.
// It is safe for concurrent use.
type Terminal struct {
	mu        sync.Mutex
	w         io.Writer
	bar       string
	barShown  bool
	prompting bool
}

// NewTerminal creates a Terminal renderer writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Render implements Renderer.
func (t *Terminal) Render(kind Kind, payload string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sb := strings.Builder{}

	switch kind {
	case Print:
		t.hideBar(&sb)
		sb.WriteString(payload)
		sb.WriteByte('\n')
		t.showBar(&sb)
	case ProgressCreate:
		if t.barShown {
			// keep the previous bar as history
			sb.WriteByte('\n')
			t.barShown = false
		}

		t.bar = payload
		t.showBar(&sb)
	case ProgressUpdate:
		t.bar = payload
		t.hideBar(&sb)
		t.showBar(&sb)
	case ProgressRemove:
		t.hideBar(&sb)
		t.bar = ""
	case ReadInputStart:
		t.hideBar(&sb)
		t.prompting = true
		sb.WriteString(payload)
	case ReadInputEnd:
		t.prompting = false
		t.showBar(&sb)
	}

	if sb.Len() > 0 {
		_, _ = io.WriteString(t.w, sb.String())
	}
}

func (t *Terminal) hideBar(sb *strings.Builder) {
	if !t.barShown {
		return
	}

	sb.WriteString(eraseLine)
	t.barShown = false
}

func (t *Terminal) showBar(sb *strings.Builder) {
	if t.bar == "" || t.barShown || t.prompting {
		return
	}

	sb.WriteString(t.bar)
	t.barShown = true
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progressbar

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/matt-FFFFFF/termout/internal/color"
	"github.com/matt-FFFFFF/termout/internal/config"
	"github.com/matt-FFFFFF/termout/internal/msgtemplate"
	"github.com/matt-FFFFFF/termout/internal/render"
	"github.com/matt-FFFFFF/termout/internal/terminal"
)

const (
	// fixedWidth is the number of columns taken by everything except the hashes:
	// "Progress: [" + "NNN" + "%]" + " [" + "]".
	fixedWidth = 19
	// FileType is the {type} written to the output file for progress lines.
	FileType = "PROGRESS"
)

// State is the public view of the active progress bar.
type State struct {
	Progress int
}

// LineAppender receives the lines mirrored to the output file.
type LineAppender interface {
	AppendLine(line string)
}

// Tracker owns the active progress bar and renders every change.
// It is safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	bar      *State
	opts     *config.Options
	renderer render.Renderer
	file     LineAppender
	width    func() int
	now      func() time.Time
}

// Option configures a Tracker.
type Option func(t *Tracker)

// WithFile mirrors progress to f when Options.PrintProgress is set.
func WithFile(f LineAppender) Option {
	return func(t *Tracker) {
		t.file = f
	}
}

// WithWidth replaces the terminal column query.
func WithWidth(width func() int) Option {
	return func(t *Tracker) {
		t.width = width
	}
}

// WithClock replaces the clock used for file timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a Tracker without an active bar.
func New(opts *config.Options, r render.Renderer, options ...Option) *Tracker {
	if opts == nil {
		opts = config.Default()
	}

	t := &Tracker{
		opts:     opts,
		renderer: r,
		width:    terminal.Width,
		now:      time.Now,
	}

	for _, o := range options {
		o(t)
	}

	return t
}

// Create starts a new bar at 0%, replacing any active one.
// With suppressRender the caller is expected to render it right after.
func (t *Tracker) Create(suppressRender bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.bar = &State{}
	if suppressRender {
		return
	}

	t.mirror()
	t.show(true)
}

// Remove clears the active bar. It does nothing when no bar is active.
func (t *Tracker) Remove() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar == nil {
		return
	}

	t.bar = nil
	t.renderer.Render(render.ProgressRemove, "")
}

// Set moves the bar to amount percent, rounded half up. The value is not
// clamped: Set(150) shows 150%. Non-finite amounts are ignored.
func (t *Tracker) Set(amount float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	newBar := t.ensure()

	if !finite(amount) {
		return
	}

	t.bar.Progress = round(amount)
	t.mirror()
	t.show(newBar)
}

// Increase adds amount percent, rounded half up, capping the result at 100.
// Zero or non-finite amounts, and a bar already at 100% or more, are ignored.
func (t *Tracker) Increase(amount float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	newBar := t.ensure()

	if amount == 0 || !finite(amount) || t.bar.Progress >= 100 {
		return
	}

	t.bar.Progress = min(t.bar.Progress+round(amount), 100)
	t.mirror()
	t.show(newBar)
}

// Get returns the active bar and whether there is one.
func (t *Tracker) Get() (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar == nil {
		return State{}, false
	}

	return *t.bar, true
}

// Active reports whether a bar is active.
func (t *Tracker) Active() bool {
	_, ok := t.Get()
	return ok
}

// Show renders the active bar, as a first frame or as an in-place update.
// It does nothing when no bar is active.
func (t *Tracker) Show(firstFrame bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.show(firstFrame)
}

// ensure creates a silent bar if none is active and reports whether it did.
func (t *Tracker) ensure() bool {
	if t.bar != nil {
		return false
	}

	t.bar = &State{}

	return true
}

func (t *Tracker) show(firstFrame bool) {
	if t.bar == nil {
		return
	}

	kind := render.ProgressUpdate
	if firstFrame {
		kind = render.ProgressCreate
	}

	t.renderer.Render(kind, Frame(t.bar.Progress, t.width()))
}

func (t *Tracker) mirror() {
	if t.file == nil || !t.opts.PrintProgress {
		return
	}

	t.file.AppendLine(msgtemplate.Format(t.opts.MsgStructure, msgtemplate.Fields{
		Type:    FileType,
		Date:    msgtemplate.Timestamp(t.now()),
		Message: "Progress: " + strconv.Itoa(t.bar.Progress) + "%",
	}))
}

// Frame builds the bar line for progress percent on a terminal of the given width:
// a highlighted "Progress: [ 42%]" label followed by a bracketed gauge of
// columns-19 characters. The hash count is limited to the gauge width so
// out-of-range progress still produces a well formed line.
func Frame(progress, columns int) string {
	label := strings.Builder{}
	label.WriteString("Progress: [")

	switch {
	case progress < 10:
		label.WriteString("  ")
	case progress < 100:
		label.WriteString(" ")
	}

	label.WriteString(strconv.Itoa(progress))
	label.WriteString("%]")

	gauge := max(columns-fixedWidth, 0)
	hashes := min(max(round(float64(gauge)*float64(progress)/100), 0), gauge)

	sb := strings.Builder{}
	sb.Grow(columns + 16)
	sb.WriteString(color.Colorize(label.String(), color.BgHiGreen, color.FgBlack))
	sb.WriteString(" [")
	sb.WriteString(strings.Repeat("#", hashes))
	sb.WriteString(strings.Repeat(" ", gauge-hashes))
	sb.WriteString("]")

	return sb.String()
}

// round rounds half up, so round(-2.5) is -2 and round(2.5) is 3.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

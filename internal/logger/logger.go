// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matt-FFFFFF/termout/internal/color"
	"github.com/matt-FFFFFF/termout/internal/config"
	"github.com/matt-FFFFFF/termout/internal/filelog"
	"github.com/matt-FFFFFF/termout/internal/msgtemplate"
	"github.com/matt-FFFFFF/termout/internal/progressbar"
	"github.com/matt-FFFFFF/termout/internal/prompt"
	"github.com/matt-FFFFFF/termout/internal/render"
)

// QuestionType is the {type} written to the output file for prompt questions.
const QuestionType = "INPUT"

// ErrInvalidOptions is returned by New when the options do not validate.
var ErrInvalidOptions = errors.New("invalid logger options")

// Logger prints entries through a renderer and the output file, and holds
// them back while a prompt is waiting for input.
type Logger struct {
	ctx      context.Context
	opts     *config.Options
	renderer render.Renderer
	file     *filelog.Writer
	progress *progressbar.Tracker
	prompt   *prompt.Controller[Entry]
	now      func() time.Time
}

// Option configures a Logger.
type Option func(*settings)

type settings struct {
	now   func() time.Time
	width func() int
}

// WithClock replaces the clock used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// WithWidth replaces the terminal column query used by the progress bar.
func WithWidth(width func() int) Option {
	return func(s *settings) {
		s.width = width
	}
}

// New creates a Logger rendering to r and reading answers from in.
// A nil opts uses config.Default().
func New(ctx context.Context, opts *config.Options, r render.Renderer, in prompt.InputSource, options ...Option) (*Logger, error) {
	if opts == nil {
		opts = config.Default()
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}

	s := settings{now: time.Now}
	for _, o := range options {
		o(&s)
	}

	l := &Logger{
		ctx:      ctx,
		opts:     opts,
		renderer: r,
		file:     filelog.New(ctx, opts.OutputFile),
		now:      s.now,
	}

	trackerOpts := []progressbar.Option{progressbar.WithClock(s.now)}
	if l.file.Enabled() {
		trackerOpts = append(trackerOpts, progressbar.WithFile(l.file))
	}

	if s.width != nil {
		trackerOpts = append(trackerOpts, progressbar.WithWidth(s.width))
	}

	l.progress = progressbar.New(opts, r, trackerOpts...)
	l.prompt = prompt.New(r, in, l.print)

	return l, nil
}

// Progress returns the progress bar tracker.
func (l *Logger) Progress() *progressbar.Tracker {
	return l.progress
}

// Prompt returns the prompt controller.
func (l *Logger) Prompt() *prompt.Controller[Entry] {
	return l.prompt
}

// Log prints e, or queues it while a prompt is waiting for input.
// A zero e.Time is set to the current time.
func (l *Logger) Log(e Entry) {
	if e.Time.IsZero() {
		e.Time = l.now()
	}

	if l.prompt.Intercept(e) {
		return
	}

	l.print(e)
}

// Info logs msg as an informational entry.
func (l *Logger) Info(origin, msg string) {
	l.Log(Entry{Type: Info, Origin: origin, Message: msg})
}

// Infof logs a formatted informational entry.
func (l *Logger) Infof(origin, format string, args ...any) {
	l.Info(origin, fmt.Sprintf(format, args...))
}

// Warn logs msg as a warning.
func (l *Logger) Warn(origin, msg string) {
	l.Log(Entry{Type: Warn, Origin: origin, Message: msg})
}

// Error logs msg as an error.
func (l *Logger) Error(origin, msg string) {
	l.Log(Entry{Type: Error, Origin: origin, Message: msg})
}

// Debug logs msg as a debug entry.
func (l *Logger) Debug(origin, msg string) {
	l.Log(Entry{Type: Debug, Origin: origin, Message: msg})
}

// ReadInput records question in the output file, unless HideQuestionInFile is set,
// and starts a prompt. See prompt.Controller.ReadInput.
func (l *Logger) ReadInput(question string, timeout time.Duration, cb prompt.Callback) {
	l.recordQuestion(question)
	l.prompt.ReadInput(l.ctx, question, timeout, cb)
}

// Ask is the blocking form of ReadInput. See prompt.Controller.Ask.
func (l *Logger) Ask(ctx context.Context, question string, timeout time.Duration) (string, error) {
	l.recordQuestion(question)
	return l.prompt.Ask(ctx, question, timeout)
}

func (l *Logger) recordQuestion(question string) {
	question = strings.TrimSpace(question)
	if l.opts.HideQuestionInFile || question == "" {
		return
	}

	l.file.AppendLine(msgtemplate.Format(l.opts.MsgStructure, msgtemplate.Fields{
		Type:    QuestionType,
		Date:    msgtemplate.Timestamp(l.now()),
		Message: question,
	}))
}

func (l *Logger) print(e Entry) {
	fields := msgtemplate.Fields{
		Type:    color.Colorize(e.Type.String(), e.Type.Color()),
		Origin:  e.Origin,
		Date:    msgtemplate.Timestamp(e.Time),
		Message: e.Message,
	}

	line := msgtemplate.Format(l.opts.MsgStructure, fields)

	l.file.AppendLine(line)
	l.renderer.Render(render.Print, line)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matt-FFFFFF/termout/internal/ctxlog"
	"github.com/matt-FFFFFF/termout/internal/render"
)

// ErrNoResponse is returned by Ask when the timeout fires before any input arrives.
var ErrNoResponse = errors.New("no response before timeout")

// InputSource delivers input lines to registered listeners.
// *terminal.Input satisfies it.
type InputSource interface {
	Listen(fn func(data []byte)) (remove func())
	Pause()
}

// Callback receives the trimmed input line. answered is false when the prompt
// ended without input, on timeout or cancellation.
type Callback func(input string, answered bool)

// Controller owns the input-active flag and the queue of deferred entries of type E.
// It is safe for concurrent use.
type Controller[E any] struct {
	renderer render.Renderer
	input    InputSource
	replay   func(E)

	mu       sync.Mutex
	active   bool
	owner    *session
	queue    []E
	draining int

	drainMu sync.Mutex
}

type session struct {
	cb       Callback
	resolved atomic.Bool

	mu             sync.Mutex
	timer          *time.Timer
	removeListener func()
	stopCtx        func() bool
}

// New creates an idle Controller. replay is called with every deferred entry once
// the prompt that deferred it has been answered; it must print the entry directly
// rather than going through Intercept again.
func New[E any](r render.Renderer, in InputSource, replay func(E)) *Controller[E] {
	return &Controller[E]{
		renderer: r,
		input:    in,
		replay:   replay,
	}
}

// ReadInput shows question and waits for one line of input without blocking the caller.
// cb is called exactly once: with the trimmed line, or with answered=false when
// timeout elapses or ctx is done. A timeout of zero or less waits until ctx is done.
//
// Prompts are expected to be serialised. Starting one while another is waiting
// logs a warning and the new prompt takes over the active flag.
func (c *Controller[E]) ReadInput(ctx context.Context, question string, timeout time.Duration, cb Callback) {
	s := &session{cb: cb}

	c.mu.Lock()
	if c.active {
		ctxlog.Warn(ctx, "prompt started while another is waiting for input")
	}

	c.active = true
	c.owner = s
	c.mu.Unlock()

	c.renderer.Render(render.ReadInputStart, question)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeListener = c.input.Listen(func(data []byte) {
		c.resolve(ctx, s, strings.TrimSpace(string(data)), true)
	})

	if timeout > 0 {
		s.timer = time.AfterFunc(timeout, func() {
			c.resolve(ctx, s, "", false)
		})
	}

	s.stopCtx = context.AfterFunc(ctx, func() {
		c.resolve(ctx, s, "", false)
	})
}

// Ask shows question and blocks until it is answered. It returns ErrNoResponse
// when timeout elapses first and ctx.Err() when ctx is done first.
// Ask must not be called from inside a Callback.
func (c *Controller[E]) Ask(ctx context.Context, question string, timeout time.Duration) (string, error) {
	type result struct {
		input    string
		answered bool
	}

	ch := make(chan result, 1)

	c.ReadInput(ctx, question, timeout, func(input string, answered bool) {
		ch <- result{input: input, answered: answered}
	})

	r := <-ch
	if r.answered {
		return r.input, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return "", ErrNoResponse
}

// Active reports whether a prompt is waiting for input.
func (c *Controller[E]) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active
}

// Queue returns a copy of the deferred entries in arrival order.
func (c *Controller[E]) Queue() []E {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]E, len(c.queue))
	copy(out, c.queue)

	return out
}

// Intercept queues e and returns true when it must not be printed yet: a prompt
// is waiting, or a resolved prompt is still running its callback or replaying.
func (c *Controller[E]) Intercept(e E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active && c.draining == 0 {
		return false
	}

	c.queue = append(c.queue, e)

	return true
}

func (c *Controller[E]) resolve(ctx context.Context, s *session, input string, answered bool) {
	if !s.resolved.CompareAndSwap(false, true) {
		return
	}

	s.teardown()

	c.mu.Lock()
	if c.owner == s {
		c.active = false
		c.owner = nil

		c.input.Pause()
	}

	c.draining++
	c.mu.Unlock()

	ctxlog.Debug(ctx, "prompt resolved", "answered", answered)

	c.renderer.Render(render.ReadInputEnd, "")
	s.cb(input, answered)
	c.drain()
}

// drain replays queued entries in batches until the queue is empty or a new
// prompt has become active. Entries left behind wait for that prompt to resolve.
func (c *Controller[E]) drain() {
	c.drainMu.Lock()
	defer c.drainMu.Unlock()

	for {
		c.mu.Lock()
		if c.active || len(c.queue) == 0 {
			c.draining--
			c.mu.Unlock()

			return
		}

		batch := c.queue
		c.queue = nil
		c.mu.Unlock()

		for _, e := range batch {
			c.replay(e)
		}
	}
}

// teardown stops every trigger of the session. It waits for ReadInput to finish
// arming them.
func (s *session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	if s.removeListener != nil {
		s.removeListener()
	}

	if s.stopCtx != nil {
		s.stopCtx()
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"errors"
	"io"
	"sync"
)

// Input turns a blocking reader such as os.Stdin into a stream of line events.
//
// Reading only happens while at least one listener is registered and the input
// is not paused. Each line is handed to the listeners registered at the moment it
// is dispatched, one line at a time, so lines typed ahead of a prompt wait for
// the next listener instead of being dropped.
type Input struct {
	r io.Reader

	mu        sync.Mutex
	cond      *sync.Cond
	listeners []*listener
	pending   []string
	lines     lineBuffer
	started   bool
	paused    bool
	eof       bool
	closed    bool
	err       error
}

type listener struct {
	fn func([]byte)
}

// NewInput creates an Input reading from r. Nothing is read until Listen is called.
func NewInput(r io.Reader) *Input {
	in := &Input{r: r}
	in.cond = sync.NewCond(&in.mu)

	return in
}

// Listen registers fn for every following line and resumes reading.
// fn is called from the reader goroutine, never from within Listen.
// The returned func removes the listener and is safe to call more than once.
func (in *Input) Listen(fn func(data []byte)) (remove func()) {
	l := &listener{fn: fn}

	in.mu.Lock()
	in.listeners = append(in.listeners, l)
	in.paused = false

	if !in.started {
		in.started = true

		go in.loop()
	}

	in.cond.Broadcast()
	in.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			in.mu.Lock()
			defer in.mu.Unlock()

			for i, candidate := range in.listeners {
				if candidate == l {
					in.listeners = append(in.listeners[:i], in.listeners[i+1:]...)
					break
				}
			}
		})
	}
}

// Pause stops reading until the next Listen call. A read already in progress
// completes and its lines are kept for the next listener.
func (in *Input) Pause() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.paused = true
}

// Close stops dispatching. It cannot interrupt a read that is blocked on the
// underlying reader; that goroutine exits once the read returns.
func (in *Input) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.closed = true
	in.cond.Broadcast()
}

// Err returns the read error that ended the stream, other than io.EOF.
func (in *Input) Err() error {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.err
}

func (in *Input) loop() {
	buf := make([]byte, 4096)

	for {
		in.mu.Lock()

		for !in.closed && (in.paused || len(in.listeners) == 0) {
			in.cond.Wait()
		}

		if in.closed || (in.eof && len(in.pending) == 0) {
			in.mu.Unlock()
			return
		}

		if len(in.pending) > 0 {
			line := in.pending[0]
			in.pending = in.pending[1:]

			fns := make([]func([]byte), len(in.listeners))
			for i, l := range in.listeners {
				fns[i] = l.fn
			}

			in.mu.Unlock()

			for _, fn := range fns {
				fn([]byte(line))
			}

			continue
		}

		in.mu.Unlock()

		n, err := in.r.Read(buf)

		in.mu.Lock()
		in.pending = append(in.pending, in.lines.write(buf[:n])...)

		if err != nil {
			if rest, ok := in.lines.flush(); ok {
				in.pending = append(in.pending, rest)
			}

			in.eof = true

			if !errors.Is(err, io.EOF) {
				in.err = err
			}
		}

		in.mu.Unlock()
	}
}

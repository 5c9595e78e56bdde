// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matt-FFFFFF/termout/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeInput delivers lines synchronously on the goroutine calling Send.
type fakeInput struct {
	mu        sync.Mutex
	listeners map[int]func([]byte)
	next      int
	pauses    int
}

func newFakeInput() *fakeInput {
	return &fakeInput{listeners: make(map[int]func([]byte))}
}

func (f *fakeInput) Listen(fn func([]byte)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	f.listeners[id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		delete(f.listeners, id)
	}
}

func (f *fakeInput) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pauses++
}

func (f *fakeInput) Send(line string) {
	f.mu.Lock()
	fns := make([]func([]byte), 0, len(f.listeners))

	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn([]byte(line))
	}
}

func (f *fakeInput) Listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.listeners)
}

// replayLog collects replayed entries.
type replayLog struct {
	mu      sync.Mutex
	entries []string
}

func (r *replayLog) replay(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
}

func (r *replayLog) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.entries...)
}

type result struct {
	input    string
	answered bool
}

func setup(t *testing.T) (*Controller[string], *fakeInput, *render.Recorder, *replayLog) {
	t.Helper()

	in := newFakeInput()
	rec := render.NewRecorder()
	log := &replayLog{}

	return New(rec, in, log.replay), in, rec, log
}

func await(t *testing.T, ch <-chan result) result {
	t.Helper()

	select {
	case r := <-ch:
		return r
	case <-time.After(time.Second):
		t.Fatal("callback not called")
		return result{}
	}
}

func TestReadInput_Data(t *testing.T) {
	c, in, rec, _ := setup(t)

	var calls atomic.Int32

	got := make(chan result, 2)

	c.ReadInput(context.Background(), "Name? ", 0, func(input string, answered bool) {
		calls.Add(1)
		got <- result{input, answered}
	})

	assert.True(t, c.Active())
	assert.Equal(t, 1, in.Listeners())

	in.Send("  hello\n")

	assert.Equal(t, result{input: "hello", answered: true}, await(t, got))
	assert.False(t, c.Active())
	assert.Equal(t, 0, in.Listeners())

	in.Send("again\n")
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, []render.Event{
		{Kind: render.ReadInputStart, Payload: "Name? "},
		{Kind: render.ReadInputEnd},
	}, rec.Events())
}

func TestReadInput_EmptyQuestionStillWaits(t *testing.T) {
	c, in, rec, _ := setup(t)

	got := make(chan result, 1)
	c.ReadInput(context.Background(), "", 0, func(input string, answered bool) {
		got <- result{input, answered}
	})

	assert.True(t, c.Active())

	in.Send("\n")

	assert.Equal(t, result{input: "", answered: true}, await(t, got))
	assert.Equal(t, []render.Kind{render.ReadInputStart, render.ReadInputEnd}, rec.Kinds())
}

func TestReadInput_Timeout(t *testing.T) {
	c, in, rec, _ := setup(t)

	var calls atomic.Int32

	got := make(chan result, 2)

	c.ReadInput(context.Background(), "Continue? ", 50*time.Millisecond, func(input string, answered bool) {
		calls.Add(1)
		got <- result{input, answered}
	})

	assert.Equal(t, result{answered: false}, await(t, got))
	assert.False(t, c.Active())
	assert.Equal(t, 0, in.Listeners(), "listener removed on timeout")

	in.Send("late\n")
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []render.Kind{render.ReadInputStart, render.ReadInputEnd}, rec.Kinds())
}

func TestReadInput_DataBeforeTimeout(t *testing.T) {
	c, in, _, _ := setup(t)

	var calls atomic.Int32

	got := make(chan result, 2)

	c.ReadInput(context.Background(), "", 30*time.Millisecond, func(input string, answered bool) {
		calls.Add(1)
		got <- result{input, answered}
	})

	in.Send("quick\n")
	assert.Equal(t, result{input: "quick", answered: true}, await(t, got))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "timer cleared")
}

func TestReadInput_RacingTriggersResolveOnce(t *testing.T) {
	for range 50 {
		c, in, _, _ := setup(t)

		var calls atomic.Int32

		done := make(chan result, 2)

		c.ReadInput(context.Background(), "", time.Millisecond, func(input string, answered bool) {
			calls.Add(1)
			done <- result{input, answered}
		})

		go in.Send("x\n")

		await(t, done)
		time.Sleep(5 * time.Millisecond)
		require.Equal(t, int32(1), calls.Load())
	}
}

func TestReadInput_ContextCancelled(t *testing.T) {
	c, in, _, _ := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan result, 1)

	c.ReadInput(ctx, "", 0, func(input string, answered bool) {
		got <- result{input, answered}
	})

	cancel()

	assert.Equal(t, result{answered: false}, await(t, got))
	assert.False(t, c.Active())
	assert.Equal(t, 0, in.Listeners())
}

func TestReadInput_ReplaysQueueInOrder(t *testing.T) {
	c, in, _, log := setup(t)

	assert.False(t, c.Intercept("before"), "idle controller prints directly")

	got := make(chan result, 1)
	c.ReadInput(context.Background(), "", 0, func(input string, answered bool) {
		assert.Empty(t, log.Entries(), "callback runs before replay")
		got <- result{input, answered}
	})

	for _, e := range []string{"one", "two", "three"} {
		assert.True(t, c.Intercept(e))
	}

	assert.Equal(t, []string{"one", "two", "three"}, c.Queue())

	in.Send("ok\n")
	await(t, got)

	assert.Equal(t, []string{"one", "two", "three"}, log.Entries())
	assert.Empty(t, c.Queue())
	assert.False(t, c.Intercept("after"))
}

func TestReadInput_EntriesFromCallbackAreReplayed(t *testing.T) {
	c, in, _, log := setup(t)

	c.ReadInput(context.Background(), "", 0, func(string, bool) {
		assert.True(t, c.Intercept("from callback"))
	})

	c.Intercept("queued")
	in.Send("y\n")

	assert.Equal(t, []string{"queued", "from callback"}, log.Entries())
	assert.Empty(t, c.Queue())
}

func TestReadInput_CallbackStartsNextPrompt(t *testing.T) {
	c, in, rec, log := setup(t)

	second := make(chan result, 1)

	c.ReadInput(context.Background(), "first? ", 0, func(string, bool) {
		c.ReadInput(context.Background(), "second? ", 0, func(input string, answered bool) {
			second <- result{input, answered}
		})
	})

	c.Intercept("held")
	in.Send("a\n")

	assert.True(t, c.Active())
	assert.Empty(t, log.Entries(), "entries wait for the next prompt")
	assert.Equal(t, []string{"held"}, c.Queue())

	in.Send("b\n")

	assert.Equal(t, result{input: "b", answered: true}, await(t, second))
	assert.Equal(t, []string{"held"}, log.Entries())
	assert.Equal(t, []render.Kind{
		render.ReadInputStart,
		render.ReadInputEnd,
		render.ReadInputStart,
		render.ReadInputEnd,
	}, rec.Kinds())
}

func TestReadInput_Superseded(t *testing.T) {
	c, in, _, _ := setup(t)

	first := make(chan result, 1)
	second := make(chan result, 1)

	c.ReadInput(context.Background(), "", 20*time.Millisecond, func(input string, answered bool) {
		first <- result{input, answered}
	})
	c.ReadInput(context.Background(), "", 0, func(input string, answered bool) {
		second <- result{input, answered}
	})

	assert.Equal(t, result{answered: false}, await(t, first))
	assert.True(t, c.Active(), "older prompt does not clear the flag")

	in.Send("z\n")

	assert.Equal(t, result{input: "z", answered: true}, await(t, second))
	assert.False(t, c.Active())
}

func TestAsk(t *testing.T) {
	t.Run("answered", func(t *testing.T) {
		c, in, _, _ := setup(t)

		go func() {
			assert.Eventually(t, func() bool { return in.Listeners() == 1 }, time.Second, time.Millisecond)
			in.Send("yes\n")
		}()

		got, err := c.Ask(context.Background(), "Proceed? ", time.Second)
		require.NoError(t, err)
		assert.Equal(t, "yes", got)
	})

	t.Run("timeout", func(t *testing.T) {
		c, _, _, _ := setup(t)

		_, err := c.Ask(context.Background(), "", 10*time.Millisecond)
		assert.ErrorIs(t, err, ErrNoResponse)
	})

	t.Run("cancelled", func(t *testing.T) {
		c, _, _, _ := setup(t)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := c.Ask(ctx, "", 0)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestIntercept_ConcurrentWithResolve(t *testing.T) {
	c, in, _, log := setup(t)

	c.ReadInput(context.Background(), "", 0, func(string, bool) {})

	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if !c.Intercept("e") {
				log.replay("e")
			}
		}()
	}

	in.Send("go\n")
	wg.Wait()

	assert.Len(t, log.Entries(), 100, "every entry is either printed or replayed")
	assert.Empty(t, c.Queue())
}

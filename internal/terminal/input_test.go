// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()

	select {
	case s := <-ch:
		return s
	case <-time.After(time.Second):
		t.Fatal("no line received")
		return ""
	}
}

func TestInput_DeliversLines(t *testing.T) {
	pr, pw := io.Pipe()
	in := NewInput(pr)

	defer in.Close()
	defer pw.Close() //nolint:errcheck

	got := make(chan string, 4)
	remove := in.Listen(func(data []byte) { got <- string(data) })
	defer remove()

	_, err := pw.Write([]byte("hel"))
	require.NoError(t, err)
	_, err = pw.Write([]byte("lo\n"))
	require.NoError(t, err)

	assert.Equal(t, "hello\n", receive(t, got))
}

func TestInput_TypedAheadLinesWaitForNextListener(t *testing.T) {
	in := NewInput(strings.NewReader("first\nsecond\n"))
	defer in.Close()

	got := make(chan string, 4)

	ready := make(chan struct{})

	var remove func()
	remove = in.Listen(func(data []byte) {
		<-ready
		remove()
		got <- string(data)
	})
	close(ready)

	assert.Equal(t, "first\n", receive(t, got))

	select {
	case s := <-got:
		t.Fatalf("unexpected line %q without a listener", s)
	case <-time.After(50 * time.Millisecond):
	}

	remove2 := in.Listen(func(data []byte) { got <- string(data) })
	defer remove2()

	assert.Equal(t, "second\n", receive(t, got))
}

func TestInput_PartialLineAtEOF(t *testing.T) {
	in := NewInput(strings.NewReader("no newline"))
	defer in.Close()

	got := make(chan string, 1)
	remove := in.Listen(func(data []byte) { got <- string(data) })
	defer remove()

	assert.Equal(t, "no newline", receive(t, got))
}

func TestInput_PauseStopsDispatch(t *testing.T) {
	in := NewInput(strings.NewReader("a\nb\n"))
	defer in.Close()

	got := make(chan string, 4)
	remove := in.Listen(func(data []byte) {
		in.Pause()
		got <- string(data)
	})

	assert.Equal(t, "a\n", receive(t, got))

	select {
	case s := <-got:
		t.Fatalf("unexpected line %q while paused", s)
	case <-time.After(50 * time.Millisecond):
	}

	remove()

	remove2 := in.Listen(func(data []byte) { got <- string(data) })
	defer remove2()

	assert.Equal(t, "b\n", receive(t, got))
}

func TestInput_RemoveIsIdempotent(t *testing.T) {
	in := NewInput(strings.NewReader(""))
	defer in.Close()

	remove := in.Listen(func([]byte) {})
	remove()
	remove()

	in.mu.Lock()
	defer in.mu.Unlock()
	assert.Empty(t, in.listeners)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestInput_Err(t *testing.T) {
	in := NewInput(errReader{})
	defer in.Close()

	remove := in.Listen(func([]byte) {})
	defer remove()

	assert.Eventually(t, func() bool {
		return in.Err() != nil
	}, time.Second, 5*time.Millisecond)
}

func TestWidthOf_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "width")
	require.NoError(t, err)

	defer f.Close() //nolint:errcheck

	assert.Equal(t, DefaultWidth, widthOf(int(f.Fd())))
}

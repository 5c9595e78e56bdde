// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package filelog

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/matt-FFFFFF/termout/internal/ctxlog"
	"github.com/spf13/afero"
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Writer appends lines to a file. Every call opens the file in append mode,
// so the file can be moved or truncated by other tools between writes.
// It is safe for concurrent use.
type Writer struct {
	ctx  context.Context
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// New creates a Writer for path. An empty path returns a Writer that discards
// everything. Write failures are reported through the ctxlog logger in ctx.
func New(ctx context.Context, path string) *Writer {
	return &Writer{
		ctx:  ctx,
		fs:   FsFactory(),
		path: path,
	}
}

// Enabled reports whether lines are written anywhere.
func (w *Writer) Enabled() bool {
	return w != nil && w.path != ""
}

// AppendLine strips escape sequences from line and appends it to the file.
// It does not return an error; the caller is never interested in it.
func (w *Writer) AppendLine(line string) {
	if !w.Enabled() {
		return
	}

	line = strings.TrimRight(ansi.Strip(line), "\n") + "\n"

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.fs.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		ctxlog.Warn(w.ctx, "filelog", "detail", "cannot open output file", "path", w.path, "error", err)
		return
	}

	defer f.Close() //nolint:errcheck

	if _, err := f.WriteString(line); err != nil {
		ctxlog.Warn(w.ctx, "filelog", "detail", "cannot append to output file", "path", w.path, "error", err)
	}
}

package app

import (
	"bytes"
	"log/slog"

	"eyes/hal"
)

// lineWriter forwards complete lines to a hal.Logger.
type lineWriter struct {
	l   hal.Logger
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.l.WriteLineBytes(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	if len(w.buf) == 0 {
		w.buf = w.buf[:0:0]
	}
	return len(p), nil
}

func newLogger(l hal.Logger, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(&lineWriter{l: l}, &slog.HandlerOptions{Level: level}))
}

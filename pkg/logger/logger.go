package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Handler is a slog.Handler that writes compact single-line records.
type Handler struct {
	out   io.Writer
	attrs []slog.Attr
	group string
}

// NewHandler creates a new Handler. A nil writer defaults to stdout.
func NewHandler(out io.Writer) *Handler {
	if out == nil {
		out = os.Stdout
	}
	return &Handler{out: out}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder

	sb.WriteString(record.Time.Format(time.RFC3339))
	sb.WriteString(" [")
	sb.WriteString(record.Level.String())
	sb.WriteString("] ")
	sb.WriteString(record.Message)

	writeAttr := func(a slog.Attr) {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		sb.WriteString(fmt.Sprintf(" %s=%v", key, a.Value.Any()))
	}

	for _, a := range h.attrs {
		writeAttr(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	sb.WriteByte('\n')

	_, err := io.WriteString(h.out, sb.String())

	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

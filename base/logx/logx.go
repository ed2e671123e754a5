// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging on top of log/slog,
// with colored level tags when the output is a terminal.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/muesli/termenv"
)

func init() {
	slog.SetDefault(slog.New(&slogHandler{}))
}

// UserLevel is the verbosity level that the user has selected,
// typically from a -v / -debug flag. Messages at levels below
// this are not printed.
var UserLevel = slog.LevelInfo

var (
	mu     sync.Mutex
	out    io.Writer = os.Stderr
	outpro           = termenv.NewOutput(os.Stderr)
)

// SetWriter sets the output writer for all logx printing.
// os.Stderr is the default. termenv detects whether the writer
// supports color and degrades to plain text when it does not.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	outpro = termenv.NewOutput(w)
}

// UserLevelIs returns whether the current [UserLevel]
// includes the given level.
func UserLevelIs(level slog.Level) bool {
	return UserLevel <= level
}

func levelTag(level slog.Level) string {
	pro := outpro
	tag := level.String()
	var color termenv.ANSIColor
	switch {
	case level >= slog.LevelError:
		color = termenv.ANSIRed
	case level >= slog.LevelWarn:
		color = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		color = termenv.ANSIGreen
	default:
		color = termenv.ANSICyan
	}
	return pro.String(tag).Foreground(color).String()
}

func log(level slog.Level, msg string, args ...any) {
	if !UserLevelIs(level) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s", levelTag(level), msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(out, " %v=%v", args[i], args[i+1])
	}
	fmt.Fprintln(out)
}

// Debug logs the given message at [slog.LevelDebug],
// with key, value pairs per slog.
func Debug(msg string, args ...any) {
	log(slog.LevelDebug, msg, args...)
}

// Info logs the given message at [slog.LevelInfo].
func Info(msg string, args ...any) {
	log(slog.LevelInfo, msg, args...)
}

// Warn logs the given message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	log(slog.LevelWarn, msg, args...)
}

// Error logs the given message at [slog.LevelError].
func Error(msg string, args ...any) {
	log(slog.LevelError, msg, args...)
}

// slogHandler routes the default slog logger through logx, so that
// plain slog calls (e.g., from errors.Log) get the same level
// filtering and colored output as direct logx calls.
type slogHandler struct {
	attrs []slog.Attr
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return UserLevelIs(level)
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	args := make([]any, 0, 2*(len(h.attrs)+r.NumAttrs()))
	for _, a := range h.attrs {
		args = append(args, a.Key, a.Value.Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		args = append(args, a.Key, a.Value.Any())
		return true
	})
	log(r.Level, r.Message, args...)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogHandler{attrs: append(slices.Clip(h.attrs), attrs...)}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	return h
}

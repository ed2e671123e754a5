// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stderr)

	UserLevel = slog.LevelInfo
	Debug("hidden")
	assert.Empty(t, buf.String())

	Info("shown", "key", 7)
	s := buf.String()
	assert.Contains(t, s, "shown")
	assert.Contains(t, s, "key=7")

	buf.Reset()
	UserLevel = slog.LevelDebug
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
	UserLevel = slog.LevelInfo
}

func TestSlogDefault(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stderr)

	UserLevel = slog.LevelInfo
	slog.Debug("hidden")
	assert.Empty(t, buf.String())

	slog.Error("boom", "from", "somewhere")
	s := buf.String()
	assert.Contains(t, s, "boom")
	assert.Contains(t, s, "from=somewhere")

	buf.Reset()
	slog.With("pipeline", "one").Info("rebuilt")
	s = buf.String()
	assert.Contains(t, s, "rebuilt")
	assert.Contains(t, s, "pipeline=one")
}

func TestUserLevelIs(t *testing.T) {
	UserLevel = slog.LevelWarn
	assert.True(t, UserLevelIs(slog.LevelError))
	assert.True(t, UserLevelIs(slog.LevelWarn))
	assert.False(t, UserLevelIs(slog.LevelInfo))
	UserLevel = slog.LevelInfo
}

// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duotone

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderWatcher(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "one.wgsl")
	require.NoError(t, os.WriteFile(fname, []byte("// v1"), 0666))

	out := make(chan string, 4)
	sw, err := newShaderWatcher(out, fname, "")
	require.NoError(t, err)
	defer sw.close()

	require.NoError(t, os.WriteFile(fname, []byte("// v2"), 0666))

	select {
	case got := <-out:
		assert.Equal(t, fname, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no watch event for changed shader file")
	}

	// changes to unwatched files in the same dir are ignored
	other := filepath.Join(dir, "other.wgsl")
	require.NoError(t, os.WriteFile(other, []byte("// x"), 0666))
	select {
	case got := <-out:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestShaderWatcherSaveBurst(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "one.wgsl")
	require.NoError(t, os.WriteFile(fname, []byte("// v1"), 0666))

	out := make(chan string, 4)
	sw, err := newShaderWatcher(out, fname)
	require.NoError(t, err)
	defer sw.close()

	// a rapid burst of writes, as editors produce on save: the reload
	// must fire after the burst settles, not be dropped with it
	for i := range 5 {
		require.NoError(t, os.WriteFile(fname, []byte{'/', '/', byte('0' + i)}, 0666))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case got := <-out:
		assert.Equal(t, fname, got)
	case <-time.After(5 * time.Second):
		t.Fatal("save burst produced no reload event")
	}

	// and only once per burst
	select {
	case got := <-out:
		t.Fatalf("extra event for %s", got)
	case <-time.After(500 * time.Millisecond):
	}
}

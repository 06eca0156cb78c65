// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/karacopy/pkg/config"
	"github.com/walteh/karacopy/pkg/log"
	"github.com/walteh/karacopy/pkg/prompt"
)

// newTestOptions builds a config over a temp library and a silent console
func newTestOptions(t *testing.T, confirm prompt.Confirmer, files ...string) (Options, string, string) {
	t.Helper()

	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "playlist")
	for _, name := range files {
		path := filepath.Join(src, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating fixture directories")
		require.NoError(t, os.WriteFile(path, []byte(name), 0644), "writing fixture file")
	}

	cfg := &config.Config{Source: src, Destination: dest}
	require.NoError(t, cfg.Validate(), "config should validate")

	var buf bytes.Buffer
	return Options{
		Config:  cfg,
		Console: log.New(&buf, zerolog.Disabled),
		Confirm: confirm,
	}, src, dest
}

func TestCopyOperation(t *testing.T) {
	opts, _, dest := newTestOptions(t, prompt.Auto(true),
		"Artist/Album [1983]/song.lrc",
		"Artist/Album [1983]/song.mp3",
		"Artist/Album [1983]/folder.jpg",
		"Artist/Album [1983]/orphan.mp3",
	)

	op := NewCopyOperation(opts)
	require.NoError(t, op.Execute(context.Background()), "copy should succeed")

	albumDest := filepath.Join(dest, "Artist", "Album [1983]")
	for _, name := range []string{"song.lrc", "song.mp3", "folder.jpg"} {
		data, err := os.ReadFile(filepath.Join(albumDest, name))
		require.NoError(t, err, "copied file should exist: %s", name)
		assert.Equal(t, "Artist/Album [1983]/"+name, string(data), "copied contents should match")
	}

	assert.NoFileExists(t, filepath.Join(albumDest, "orphan.mp3"),
		"media without a lyrics sibling should not be copied")
}

func TestCopyOperationAbortLeavesNoDestination(t *testing.T) {
	opts, _, dest := newTestOptions(t, prompt.Auto(false),
		"Artist/Album [1983]/song.lrc",
	)

	op := NewCopyOperation(opts)
	require.NoError(t, op.Execute(context.Background()), "an aborted run is not an error")
	assert.NoDirExists(t, dest, "aborted run should not create the destination")
}

func TestCopyOperationOverwritesExistingDestination(t *testing.T) {
	opts, _, dest := newTestOptions(t, &prompt.Scripted{Answers: []bool{true, true}},
		"Artist/Album [1983]/song.lrc",
	)

	stale := filepath.Join(dest, "stale.txt")
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	op := NewCopyOperation(opts)
	require.NoError(t, op.Execute(context.Background()), "copy should succeed")

	assert.NoFileExists(t, stale, "stale destination contents should be wiped")
	assert.FileExists(t, filepath.Join(dest, "Artist", "Album [1983]", "song.lrc"),
		"selected file should be copied after the wipe")
}

func TestCopyOperationDeclinedOverwriteKeepsDestination(t *testing.T) {
	opts, _, dest := newTestOptions(t, &prompt.Scripted{Answers: []bool{true, false}},
		"Artist/Album [1983]/song.lrc",
	)

	stale := filepath.Join(dest, "stale.txt")
	require.NoError(t, os.MkdirAll(dest, 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	op := NewCopyOperation(opts)
	require.NoError(t, op.Execute(context.Background()), "a declined overwrite is not an error")

	assert.FileExists(t, stale, "declined overwrite should leave the destination untouched")
	assert.NoFileExists(t, filepath.Join(dest, "Artist", "Album [1983]", "song.lrc"),
		"declined overwrite should not copy anything")
}

func TestCopyOperationUnparsableAlbumFails(t *testing.T) {
	opts, _, dest := newTestOptions(t, prompt.Auto(true),
		"Artist/No Year Album/song.lrc",
	)

	op := NewCopyOperation(opts)
	err := op.Execute(context.Background())
	require.Error(t, err, "unparsable album should abort the run")
	assert.Contains(t, err.Error(), "no bracketed 4-digit year", "error message should match")
	assert.NoDirExists(t, dest, "failed run should not create the destination")
}

func TestPlanOperationCopiesNothing(t *testing.T) {
	opts, _, dest := newTestOptions(t, prompt.Auto(true),
		"Artist/Album [1983]/song.lrc",
		"Artist/Album [1983]/song.mp3",
	)

	op := NewPlanOperation(opts)
	require.NoError(t, op.Execute(context.Background()), "plan should succeed")
	assert.NoDirExists(t, dest, "plan should never create the destination")
}

func TestCopyFilePreservesTimestamps(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "nested", "deeper", "dst.mp3")

	require.NoError(t, os.WriteFile(src, []byte("audio"), 0644))
	mtime := time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	require.NoError(t, CopyFile(context.Background(), src, dst), "copy should succeed")

	data, err := os.ReadFile(dst)
	require.NoError(t, err, "destination should exist")
	assert.Equal(t, "audio", string(data), "contents should match")

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "modification time should be preserved")
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(context.Background(), filepath.Join(dir, "gone.mp3"), filepath.Join(dir, "dst.mp3"))
	require.Error(t, err, "copy should fail loudly")
	assert.Contains(t, err.Error(), "opening source file", "error message should match")
}

func TestResetDestination(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dest")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "old.txt"), []byte("old"), 0644))

	require.NoError(t, ResetDestination(context.Background(), dir), "reset should succeed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "destination should exist after reset")
	assert.Empty(t, entries, "destination should be empty after reset")
}

func TestRunner(t *testing.T) {
	opts, _, _ := newTestOptions(t, prompt.Auto(true),
		"Artist/Album [1983]/song.lrc",
	)

	logger := zerolog.Nop()
	runner := NewRunner(&logger)
	require.NoError(t, runner.Run(context.Background(), NewPlanOperation(opts)), "runner should execute the operation")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	err := runner.Run(cancelled, NewPlanOperation(opts))
	require.Error(t, err, "runner should refuse a cancelled context")
	assert.Contains(t, err.Error(), "operation cancelled")
}

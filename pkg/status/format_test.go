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

package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/karacopy/pkg/classify"
	"github.com/walteh/karacopy/pkg/library"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{
			name: "zero",
			n:    0,
			want: "0.0 B",
		},
		{
			name: "bytes",
			n:    512,
			want: "512.0 B",
		},
		{
			name: "one_kibibyte",
			n:    1024,
			want: "1.0 KiB",
		},
		{
			name: "mebibytes_rounded",
			n:    3565158,
			want: "3.4 MiB",
		},
		{
			name: "gibibytes",
			n:    5 << 30,
			want: "5.0 GiB",
		},
		{
			name: "tebibytes",
			n:    1 << 40,
			want: "1.0 TiB",
		},
		{
			name: "exbibytes",
			n:    1 << 60,
			want: "1.0 EiB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.n), "formatted size should match")
		})
	}
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, size int) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0644), "writing fixture file")
		return path
	}

	entries := []library.Entry{
		{Path: write("song.lrc", 100), Kind: classify.Lyrics},
		{Path: write("song.mp3", 4000), Kind: classify.Media},
		{Path: write("folder.jpg", 900), Kind: classify.Art},
	}

	summary, err := Summarize(context.Background(), entries)
	require.NoError(t, err, "summarize should succeed")
	assert.Equal(t, 3, summary.Files, "file count should match")
	assert.Equal(t, 1, summary.MediaFiles, "media count should match")
	assert.Equal(t, int64(5000), summary.TotalBytes, "total size should match")
}

func TestSummarizeEmptySelection(t *testing.T) {
	summary, err := Summarize(context.Background(), nil)
	require.NoError(t, err, "summarize should succeed")
	assert.Equal(t, Summary{}, summary, "empty selection should produce a zero summary")
}

func TestSummarizeMissingFile(t *testing.T) {
	entries := []library.Entry{
		{Path: filepath.Join(t.TempDir(), "gone.lrc"), Kind: classify.Lyrics},
	}

	_, err := Summarize(context.Background(), entries)
	require.Error(t, err, "summarize should fail on a missing file")
	assert.Contains(t, err.Error(), "stating selected file", "error message should match")
}

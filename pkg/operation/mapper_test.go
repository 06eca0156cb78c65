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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestMapDestination(t *testing.T) {
	tests := []struct {
		name       string
		sourceRoot string
		destRoot   string
		sourcePath string
		want       string
		wantErr    bool
	}{
		{
			name:       "album_track",
			sourceRoot: "/music",
			destRoot:   "/out",
			sourcePath: "/music/ArtistX/Album [1985]/01.mp3",
			want:       "/out/ArtistX/Album [1985]/01.mp3",
		},
		{
			name:       "nested_disc_folder",
			sourceRoot: "/music",
			destRoot:   "/playlists/1980s",
			sourcePath: "/music/Martha and the Muffins/Danseparc [1983]/Disc 1/01 - Obedience.mp3",
			want:       "/playlists/1980s/Martha and the Muffins/Danseparc [1983]/Disc 1/01 - Obedience.mp3",
		},
		{
			name:       "source_root_with_trailing_separator",
			sourceRoot: "/music/",
			destRoot:   "/out",
			sourcePath: "/music/Artist/Album [1990]/track.lrc",
			want:       "/out/Artist/Album [1990]/track.lrc",
		},
		{
			name:       "path_not_under_root",
			sourceRoot: "/music",
			destRoot:   "/out",
			sourcePath: "/other/Artist/Album [1985]/01.mp3",
			wantErr:    true,
		},
		{
			name:       "sibling_prefix_is_not_under_root",
			sourceRoot: "/music",
			destRoot:   "/out",
			sourcePath: "/mus/Artist/Album [1985]/01.mp3",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapDestination(tt.sourceRoot, tt.destRoot, tt.sourcePath)
			if tt.wantErr {
				require.Error(t, err, "mapping should fail")
				require.ErrorIs(t, err, ErrPathNotUnderRoot, "error should be ErrPathNotUnderRoot")
				return
			}
			require.NoError(t, err, "mapping should succeed")
			assert.Equal(t, tt.want, got, "destination path should match")
		})
	}
}

func TestMapDestinationErrorIsMatchable(t *testing.T) {
	_, err := MapDestination("/music", "/out", "/elsewhere/file.mp3")
	assert.True(t, errors.Is(err, ErrPathNotUnderRoot), "wrapped error should match the sentinel")
}

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

package library

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/karacopy/pkg/classify"
	"gitlab.com/tozd/go/errors"
)

// ❌ ErrUnparsableAlbumYear means an album folder name carries no bracketed
// 4-digit year token
var ErrUnparsableAlbumYear = errors.New("album name has no bracketed 4-digit year")

// 🗓️ yearToken matches a 4-digit year in literal square brackets
var yearToken = regexp.MustCompile(`\[(\d{4})\]`)

// 🎯 Entry is one selected source file
type Entry struct {
	Path string        // absolute source path
	Kind classify.Kind // media, art or lyrics
}

// 🔧 YearRange is an inclusive [min, max] filter; a nil bound is unbounded
type YearRange struct {
	Min *int
	Max *int
}

// 🔍 Contains reports whether year passes the filter
func (r YearRange) Contains(year int) bool {
	if r.Min != nil && year < *r.Min {
		return false
	}
	if r.Max != nil && year > *r.Max {
		return false
	}
	return true
}

// 📝 String returns a human-readable form like "[1980, 1989]" or "[any, 1989]"
func (r YearRange) String() string {
	min, max := "any", "any"
	if r.Min != nil {
		min = strconv.Itoa(*r.Min)
	}
	if r.Max != nil {
		max = strconv.Itoa(*r.Max)
	}
	return "[" + min + ", " + max + "]"
}

// 🗓️ ParseAlbumYear extracts the album year from a folder base name.
// When several bracketed tokens are present the last one wins, so names
// like "Greatest Hits [Disc 1] [1995]" still resolve correctly.
func ParseAlbumYear(name string) (int, error) {
	matches := yearToken.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return 0, errors.Errorf("parsing %q: %w", name, ErrUnparsableAlbumYear)
	}
	year, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return 0, errors.Errorf("parsing %q: %w", name, err)
	}
	return year, nil
}

// 🎯 Selector picks the files to copy out of a single album folder
type Selector struct {
	// Extensions are the allow-lists used for classification
	Extensions classify.Extensions
	// Years is the inclusive year filter
	Years YearRange
	// ShouldIgnore, when set, excludes matching paths from selection
	ShouldIgnore func(path string) bool
}

// 📋 SelectAlbum returns the selection entries for one album folder.
//
// Every lyrics file is selected, plus any same-directory same-stem media
// sibling that exists on disk at check time. Art files are selected
// unconditionally. Media files without a lyrics sibling are never selected.
//
// A folder whose year falls outside the range yields an empty selection;
// a folder with no parsable year yields ErrUnparsableAlbumYear and the
// caller decides whether to abort or skip.
func (s *Selector) SelectAlbum(ctx context.Context, albumPath string) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)

	albumName := filepath.Base(albumPath)
	artistName := filepath.Base(filepath.Dir(albumPath))

	year, err := ParseAlbumYear(albumName)
	if err != nil {
		return nil, errors.Errorf("album %q: %w", albumName, err)
	}

	logger.Debug().
		Str("artist", artistName).
		Str("album", albumName).
		Int("year", year).
		Msg("inspecting album")

	if !s.Years.Contains(year) {
		logger.Debug().Str("album", albumName).Int("year", year).Msg("album outside year range")
		return nil, nil
	}

	var entries []Entry
	err = filepath.WalkDir(albumPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking album %q: %w", albumName, err)
		}
		if d.IsDir() {
			return nil
		}
		if s.ShouldIgnore != nil && s.ShouldIgnore(path) {
			logger.Debug().Str("file", path).Msg("file ignored by pattern")
			return nil
		}

		switch s.Extensions.Classify(path) {
		case classify.Lyrics:
			entries = append(entries, Entry{Path: path, Kind: classify.Lyrics})
			entries = append(entries, s.mediaSiblings(ctx, path)...)
		case classify.Art:
			entries = append(entries, Entry{Path: path, Kind: classify.Art})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// 🔍 mediaSiblings returns the media files sharing lyricsPath's directory
// and stem, one per configured media extension, in allow-list order
func (s *Selector) mediaSiblings(ctx context.Context, lyricsPath string) []Entry {
	stem := strings.TrimSuffix(lyricsPath, filepath.Ext(lyricsPath))

	var entries []Entry
	for _, ext := range s.Extensions.Media {
		sibling := stem + "." + ext
		if s.ShouldIgnore != nil && s.ShouldIgnore(sibling) {
			continue
		}
		info, err := os.Stat(sibling)
		if err != nil || info.IsDir() {
			continue
		}
		entries = append(entries, Entry{Path: sibling, Kind: classify.Media})
	}
	return entries
}

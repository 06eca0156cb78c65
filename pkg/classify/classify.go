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

// Package classify provides pure helpers for sorting library files into
// media, cover art and lyrics buckets, and for measuring path depth.
package classify

import (
	"path/filepath"
	"strings"
)

// 🎯 Kind is the classification of a library file
type Kind int

const (
	// Unknown means the extension matched no configured list
	Unknown Kind = iota
	// Media is an audio track (e.g. mp3, m4a)
	Media
	// Art is cover art (e.g. jpg)
	Art
	// Lyrics is a synced lyrics file (e.g. lrc)
	Lyrics
)

// 📝 String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case Media:
		return "media"
	case Art:
		return "art"
	case Lyrics:
		return "lyrics"
	default:
		return "unknown"
	}
}

// 🔧 Extensions holds the extension allow-lists for each kind.
// Extensions are stored without a leading dot and matched case-sensitively.
type Extensions struct {
	Media  []string `json:"media" yaml:"media" hcl:"media,optional"`
	Art    []string `json:"art" yaml:"art" hcl:"art,optional"`
	Lyrics []string `json:"lyrics" yaml:"lyrics" hcl:"lyrics,optional"`
}

// 🏭 DefaultExtensions returns the stock allow-lists
func DefaultExtensions() Extensions {
	return Extensions{
		Media:  []string{"mp3", "m4a"},
		Art:    []string{"jpg"},
		Lyrics: []string{"lrc"},
	}
}

// 📝 Ext returns the extension of path without its leading dot.
// Matching elsewhere is case-sensitive, so no case folding happens here.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// 🔍 Classify returns the kind of path according to the allow-lists.
// An extension belongs to at most one list; the first match wins in the
// order lyrics, art, media.
func (e Extensions) Classify(path string) Kind {
	ext := Ext(path)
	switch {
	case contains(e.Lyrics, ext):
		return Lyrics
	case contains(e.Art, ext):
		return Art
	case contains(e.Media, ext):
		return Media
	default:
		return Unknown
	}
}

// 📏 Depth counts the non-empty segments of path after trimming leading
// and trailing separators. Only depth differences between paths sharing a
// root are meaningful.
func Depth(path string) int {
	trimmed := strings.Trim(path, string(filepath.Separator))
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, string(filepath.Separator)))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

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

// Package library walks an artist/album music tree and computes the set of
// files to replicate: lyrics files, their media siblings, and cover art,
// filtered by the album year embedded in each album folder's name.
package library

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/karacopy/pkg/classify"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the walker
type Options struct {
	// Root is the absolute path of the library root
	Root string
	// Years is the inclusive album year filter
	Years YearRange
	// Extensions are the classification allow-lists
	Extensions classify.Extensions
	// Ignore holds doublestar globs matched against root-relative paths
	Ignore []string
	// SkipUnparsable skips albums with no parsable year instead of aborting
	SkipUnparsable bool
}

// 🚶 Walker aggregates album selections across a whole library
type Walker struct {
	opts     Options
	selector *Selector
}

// 🏭 NewWalker creates a new walker for the given options
func NewWalker(opts Options) (*Walker, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("library root is required")
	}

	w := &Walker{opts: opts}
	w.selector = &Selector{
		Extensions: opts.Extensions,
		Years:      opts.Years,
	}
	if len(opts.Ignore) > 0 {
		w.selector.ShouldIgnore = w.shouldIgnore
	}
	return w, nil
}

// 🚶 Walk traverses the library and returns the full selection set.
//
// A directory exactly two segments below the root is an album folder;
// artist folders (depth 1) and deeper folders are traversed but never
// selected from directly. Traversal is lexical, so the result order is
// deterministic.
func (w *Walker) Walk(ctx context.Context) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)
	baseDepth := classify.Depth(w.opts.Root)

	var selection []Entry
	err := filepath.WalkDir(w.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking library: %w", err)
		}
		if !d.IsDir() {
			return nil
		}
		if classify.Depth(path)-baseDepth != 2 {
			return nil
		}

		entries, err := w.selector.SelectAlbum(ctx, path)
		if err != nil {
			if w.opts.SkipUnparsable && errors.Is(err, ErrUnparsableAlbumYear) {
				logger.Warn().Str("album", filepath.Base(path)).Msg("skipping album with unparsable year")
				return filepath.SkipDir
			}
			return err
		}
		selection = append(selection, entries...)

		// the selector already walked the album subtree
		return filepath.SkipDir
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("files", len(selection)).Msg("library walk complete")
	return selection, nil
}

// 🔍 shouldIgnore checks a path against the configured ignore globs
func (w *Walker) shouldIgnore(path string) bool {
	rel, err := filepath.Rel(w.opts.Root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range w.opts.Ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

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
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/karacopy/pkg/classify"
	"github.com/walteh/karacopy/pkg/library"
	"gitlab.com/tozd/go/errors"
)

// 📊 Summary aggregates a selection set
type Summary struct {
	Files      int   // all selected files, including lyrics and art
	MediaFiles int   // media-classified files among them
	TotalBytes int64 // byte size of every selected file
}

// 📋 Summarize stats every entry and aggregates counts and sizes.
// A stat failure aborts the summary; the selection was computed from the
// live filesystem moments ago, so a missing file is a real error.
func Summarize(ctx context.Context, entries []library.Entry) (Summary, error) {
	logger := zerolog.Ctx(ctx)

	var s Summary
	for _, e := range entries {
		info, err := os.Stat(e.Path)
		if err != nil {
			return Summary{}, errors.Errorf("stating selected file: %w", err)
		}
		s.Files++
		s.TotalBytes += info.Size()
		if e.Kind == classify.Media {
			s.MediaFiles++
		}
	}

	logger.Debug().
		Int("files", s.Files).
		Int("media_files", s.MediaFiles).
		Int64("total_bytes", s.TotalBytes).
		Msg("selection summarized")
	return s, nil
}

// 📝 Print writes the operator-facing summary lines
func (s Summary) Print() {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).
		Println(fmt.Sprintf("Total number of files to be copied (including media/lyrics/art): %d", s.Files))
	pterm.Info.WithPrefix(pterm.Prefix{Text: "♫"}).
		Println(fmt.Sprintf("Total number of media files to be copied: %d", s.MediaFiles))
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📏"}).
		Println(fmt.Sprintf("Total filesize to be copied: %d bytes (%s)", s.TotalBytes, FormatBytes(s.TotalBytes)))
}

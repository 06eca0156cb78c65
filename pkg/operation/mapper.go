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
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ❌ ErrPathNotUnderRoot means a selected path does not sit under the
// configured source root; the walker and the mapper disagree and the run
// must not continue
var ErrPathNotUnderRoot = errors.New("source path is not under the source root")

// 🗺️ MapDestination computes the destination path for a selected source
// file, preserving the path segment between sourceRoot and the file.
//
// Given sourceRoot "/music", destRoot "/playlists/1980s" and sourcePath
// "/music/Martha and the Muffins/Danseparc [1983]/01 - Obedience.mp3",
// the result is
// "/playlists/1980s/Martha and the Muffins/Danseparc [1983]/01 - Obedience.mp3".
//
// sourceRoot must be a literal path prefix of sourcePath.
func MapDestination(sourceRoot, destRoot, sourcePath string) (string, error) {
	if !strings.HasPrefix(sourcePath, sourceRoot) {
		return "", errors.Errorf("mapping %q under %q: %w", sourcePath, sourceRoot, ErrPathNotUnderRoot)
	}

	rel := strings.TrimPrefix(sourcePath, sourceRoot)
	rel = strings.TrimLeft(rel, string(filepath.Separator))
	return filepath.Join(destRoot, rel), nil
}

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
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 CopyFile copies src to dst, creating any missing parent directories
// of dst and carrying the source modification time over to the copy
func CopyFile(ctx context.Context, src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return errors.Errorf("stating source file: %w", err)
	}

	dstFile, err := os.Create(dst)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Errorf("copying file contents: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("preserving timestamps: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Msg("file copied")
	return nil
}

// 🗑️ ResetDestination removes dir recursively and recreates it empty.
// Callers must have confirmed with the user first.
func ResetDestination(ctx context.Context, dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.Errorf("removing destination: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("recreating destination: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("destination reset")
	return nil
}

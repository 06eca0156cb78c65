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
	"os"

	"github.com/walteh/karacopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewCopyOperation creates a new copy operation
func NewCopyOperation(opts Options) Operation {
	return &copyOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📦 copyOperation selects files, confirms with the user and copies
type copyOperation struct {
	BaseOperation
}

// 🏃 Execute runs the copy operation.
//
// The user is asked before any copy starts, and again when the
// destination already exists (it is wiped and recreated in that case).
// Declining either question aborts without touching the filesystem and
// without error.
func (op *copyOperation) Execute(ctx context.Context) error {
	selection, err := op.selectFiles(ctx)
	if err != nil {
		return errors.Errorf("selecting files: %w", err)
	}

	summary, err := op.report(ctx, selection)
	if err != nil {
		return errors.Errorf("reporting selection: %w", err)
	}

	proceed, err := op.Confirm.Confirm(ctx, "Proceed with copy?", true)
	if err != nil {
		return errors.Errorf("confirming copy: %w", err)
	}
	if !proceed {
		op.Console.Warning("Copy aborted")
		return nil
	}

	if _, err := os.Stat(op.Config.Destination); err == nil {
		overwrite, err := op.Confirm.Confirm(ctx,
			"Destination folder exists, are you sure you wish to overwrite it (all contents will be lost)?", true)
		if err != nil {
			return errors.Errorf("confirming overwrite: %w", err)
		}
		if !overwrite {
			op.Console.Warning("Copy aborted")
			return nil
		}
		if err := ResetDestination(ctx, op.Config.Destination); err != nil {
			return errors.Errorf("resetting destination: %w", err)
		}
		op.Console.Info("Existing folder deleted successfully. Proceeding with copy")
	}

	for _, entry := range selection {
		dst, err := MapDestination(op.Config.Source, op.Config.Destination, entry.Path)
		if err != nil {
			return errors.Errorf("mapping destination: %w", err)
		}
		if err := CopyFile(ctx, entry.Path, dst); err != nil {
			return errors.Errorf("copying %s: %w", entry.Path, err)
		}
	}

	op.Console.Successf("Copied %d files (%s)", summary.Files, status.FormatBytes(summary.TotalBytes))
	return nil
}

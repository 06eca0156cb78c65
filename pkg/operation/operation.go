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

// Package operation provides the plan and copy operations that turn a
// library selection into destination files.
package operation

import (
	"context"
	"path/filepath"

	"github.com/walteh/karacopy/pkg/config"
	"github.com/walteh/karacopy/pkg/library"
	"github.com/walteh/karacopy/pkg/log"
	"github.com/walteh/karacopy/pkg/prompt"
	"github.com/walteh/karacopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a runnable unit of work
type Operation interface {
	// 🏃 Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the karacopy configuration
	Config *config.Config
	// Console is the user-facing logger
	Console *log.Logger
	// Confirm asks the user before destructive steps
	Confirm prompt.Confirmer
}

// 📦 BaseOperation provides common functionality for operations
type BaseOperation struct {
	Config  *config.Config
	Console *log.Logger
	Confirm prompt.Confirmer
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{
		Config:  opts.Config,
		Console: opts.Console,
		Confirm: opts.Confirm,
	}
}

// 📋 selectFiles walks the library and returns the full selection set
func (op *BaseOperation) selectFiles(ctx context.Context) ([]library.Entry, error) {
	years, err := op.Config.YearRange()
	if err != nil {
		return nil, errors.Errorf("resolving year range: %w", err)
	}

	walker, err := library.NewWalker(library.Options{
		Root:           op.Config.Source,
		Years:          years,
		Extensions:     *op.Config.Extensions,
		Ignore:         op.Config.IgnorePatterns,
		SkipUnparsable: op.Config.SkipBadAlbums,
	})
	if err != nil {
		return nil, errors.Errorf("creating walker: %w", err)
	}

	op.Console.StartSelection(ctx, op.Config.Source, years.String())
	selection, err := walker.Walk(ctx)
	if err != nil {
		return nil, errors.Errorf("walking library: %w", err)
	}
	op.Console.EndSelection(ctx)

	return selection, nil
}

// 📊 report prints every selected path and the aggregate summary
func (op *BaseOperation) report(ctx context.Context, selection []library.Entry) (status.Summary, error) {
	for _, entry := range selection {
		rel, err := filepath.Rel(op.Config.Source, entry.Path)
		if err != nil {
			rel = entry.Path
		}
		op.Console.LogFileSelection(ctx, log.FileSelection{
			Path: rel,
			Kind: entry.Kind,
		})
	}

	summary, err := status.Summarize(ctx, selection)
	if err != nil {
		return status.Summary{}, errors.Errorf("summarizing selection: %w", err)
	}

	op.Console.LogNewline()
	summary.Print()
	return summary, nil
}

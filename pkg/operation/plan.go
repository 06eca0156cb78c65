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

	"gitlab.com/tozd/go/errors"
)

// 📦 NewPlanOperation creates a new plan operation
func NewPlanOperation(opts Options) Operation {
	return &planOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📦 planOperation selects and reports without copying anything
type planOperation struct {
	BaseOperation
}

// 🏃 Execute runs the plan operation
func (op *planOperation) Execute(ctx context.Context) error {
	selection, err := op.selectFiles(ctx)
	if err != nil {
		return errors.Errorf("selecting files: %w", err)
	}

	if _, err := op.report(ctx, selection); err != nil {
		return errors.Errorf("reporting selection: %w", err)
	}

	op.Console.Info("Dry run complete, no files were copied")
	return nil
}

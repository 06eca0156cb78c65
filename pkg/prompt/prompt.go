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

// Package prompt provides yes/no confirmation before destructive steps.
package prompt

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Confirmer asks the user a yes/no question
type Confirmer interface {
	// Confirm presents question and returns the user's answer.
	// defaultYes is the answer assumed when the user just hits enter.
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
}

// 🎤 Interactive is a Confirmer backed by an interactive terminal prompt
type Interactive struct{}

// 🏭 NewInteractive creates a terminal-backed confirmer
func NewInteractive() *Interactive {
	return &Interactive{}
}

// ❓ Confirm asks on the terminal
func (p *Interactive) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultYes).
		Show(question)
	if err != nil {
		return false, errors.Errorf("reading confirmation: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("question", question).Bool("answer", answer).Msg("confirmation received")
	return answer, nil
}

// 🤖 Auto is a Confirmer that always returns a fixed answer, used for
// --yes runs and for tests
type Auto bool

// ❓ Confirm returns the fixed answer without prompting
func (a Auto) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	zerolog.Ctx(ctx).Debug().Str("question", question).Bool("answer", bool(a)).Msg("auto-confirmed")
	return bool(a), nil
}

// 📜 Scripted is a Confirmer that replays a fixed sequence of answers;
// once exhausted it returns the default
type Scripted struct {
	Answers []bool
	next    int
}

// ❓ Confirm pops the next scripted answer
func (s *Scripted) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	if s.next >= len(s.Answers) {
		return defaultYes, nil
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}

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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/karacopy/pkg/classify"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 60 // base width for the file path
	kindWidth  = 8  // width for the file kind
)

// 🎯 FileSelection represents a selected file for logging
type FileSelection struct {
	Path string        // source path, relative to the library root
	Kind classify.Kind // media, art or lyrics
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog     zerolog.Logger
	console  io.Writer
	mu       sync.Mutex
	selected int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileSelection formats a selection line for display
func (l *Logger) formatFileSelection(sel FileSelection) string {
	var symbol rune
	var symbolColor color.Attribute
	switch sel.Kind {
	case classify.Media:
		symbol = '♫'
		symbolColor = color.FgCyan
	case classify.Lyrics:
		symbol = '✓'
		symbolColor = color.FgGreen
	case classify.Art:
		symbol = '◆'
		symbolColor = color.FgYellow
	default:
		symbol = '-'
		symbolColor = color.FgRed
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, sel.Path),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", kindWidth, sel.Kind)))
}

// 📝 LogFileSelection logs one selected file
func (l *Logger) LogFileSelection(ctx context.Context, sel FileSelection) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.selected++
	fmt.Fprintln(l.console, l.formatFileSelection(sel))

	l.zlog.Info().
		Str("file", sel.Path).
		Stringer("kind", sel.Kind).
		Msg("file selected")
}

// 📝 StartSelection prints the library header for a selection run
func (l *Logger) StartSelection(ctx context.Context, root, years string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.selected = 0
	fmt.Fprintf(l.console, "[selecting from %s]\n",
		color.New(color.FgCyan).Sprint(root))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint("year range"),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(years))

	l.zlog.Info().
		Str("root", root).
		Str("years", years).
		Msg("starting selection")
}

// 📝 EndSelection logs the selection summary line
func (l *Logger) EndSelection(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Info().
		Int("files", l.selected).
		Msg("selection complete")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	appText := color.New(color.Bold, color.FgCyan).Sprint("karacopy")
	fmt.Fprintf(l.console, "\n%s %s\n\n", appText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

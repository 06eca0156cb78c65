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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/karacopy/pkg/classify"
	"github.com/walteh/karacopy/pkg/library"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🗓️ Year is an optional year bound: a 4-digit integer, "any", or empty
// (both meaning unbounded)
type Year string

// UnmarshalYAML accepts both quoted strings and bare integers
func (y *Year) UnmarshalYAML(value *yaml.Node) error {
	*y = Year(value.Value)
	return nil
}

// 🔍 Bounded reports whether the bound is an actual year
func (y Year) Bounded() bool {
	return y != "" && y != "any"
}

// 🔢 Value returns the integer bound, or nil when unbounded
func (y Year) Value() (*int, error) {
	if !y.Bounded() {
		return nil, nil
	}
	v, err := strconv.Atoi(string(y))
	if err != nil {
		return nil, errors.Errorf("invalid year %q: %w", string(y), err)
	}
	return &v, nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Source         string               `json:"source" yaml:"source" hcl:"source"`
	Destination    string               `json:"destination" yaml:"destination" hcl:"destination"`
	MinYear        Year                 `json:"min_year,omitempty" yaml:"min_year,omitempty" hcl:"min_year,optional"`
	MaxYear        Year                 `json:"max_year,omitempty" yaml:"max_year,omitempty" hcl:"max_year,optional"`
	Extensions     *classify.Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,block"`
	IgnorePatterns []string             `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	SkipBadAlbums  bool                 `json:"skip_bad_albums,omitempty" yaml:"skip_bad_albums,omitempty" hcl:"skip_bad_albums,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.Source == "" {
		return errors.Errorf("source is required")
	}
	if cfg.Destination == "" {
		return errors.Errorf("destination is required")
	}

	// Clean up paths
	cfg.Source = filepath.Clean(cfg.Source)
	cfg.Destination = filepath.Clean(cfg.Destination)

	// Set defaults
	if cfg.Extensions == nil {
		exts := classify.DefaultExtensions()
		cfg.Extensions = &exts
	}

	// An inverted range would silently select nothing; reject it eagerly
	min, err := cfg.MinYear.Value()
	if err != nil {
		return errors.Errorf("min_year: %w", err)
	}
	max, err := cfg.MaxYear.Value()
	if err != nil {
		return errors.Errorf("max_year: %w", err)
	}
	if min != nil && max != nil && *min > *max {
		return errors.Errorf("min_year %d exceeds max_year %d", *min, *max)
	}

	return nil
}

// 🗓️ YearRange converts the configured bounds into a library filter
func (cfg *Config) YearRange() (library.YearRange, error) {
	min, err := cfg.MinYear.Value()
	if err != nil {
		return library.YearRange{}, errors.Errorf("min_year: %w", err)
	}
	max, err := cfg.MaxYear.Value()
	if err != nil {
		return library.YearRange{}, errors.Errorf("max_year: %w", err)
	}
	return library.YearRange{Min: min, Max: max}, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	min, max := string(cfg.MinYear), string(cfg.MaxYear)
	if min == "" {
		min = "any"
	}
	if max == "" {
		max = "any"
	}
	return fmt.Sprintf("%s -> %s [%s, %s]", cfg.Source, cfg.Destination, min, max)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

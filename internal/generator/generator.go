/*
Copyright 2026 the Mistral Harness Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package generator implements the regenerate-then-verify pipeline for the
// typed API client: the OpenAPI document is validated, any previous generated
// output is removed in full, the generator tool is invoked, and the expected
// artifacts are checked for existence afterwards. The output directory is
// therefore always a pure function of the current document, never a mix of
// old and new generations.
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/qaops/mistral-e2e/internal/logger"
)

const (
	// DefaultSpecPath is where the trimmed Mistral document lives.
	DefaultSpecPath = "openapi/mistral.yaml"

	// DefaultOutputDir is the generated client package.
	DefaultOutputDir = "pkg/openapi"
)

var (
	ErrSpecNotFound = errors.New("openapi document not found")
	ErrSpecInvalid  = errors.New("openapi document failed validation")
	ErrNoOutput     = errors.New("generator produced no output")
)

// generatorConfigs are the oapi-codegen config files in the output directory,
// one per generated artifact.
var generatorConfigs = []string{"types.yaml", "client.yaml"}

// generatedFiles are the artifacts a successful run must leave behind.
var generatedFiles = []string{"types.gen.go", "client.gen.go"}

// Config controls a generator run.
type Config struct {
	// SpecPath is the OpenAPI document, defaulting to DefaultSpecPath.
	SpecPath string

	// OutputDir is the generated package directory, defaulting to
	// DefaultOutputDir. Only *.gen.go files within it are considered
	// generated output; hand-written helpers are left alone.
	OutputDir string

	// Command is the generator invocation prefix. It defaults to the
	// go.mod-managed tool and exists so tests can substitute a stub.
	Command []string
}

func (c Config) withDefaults() Config {
	if c.SpecPath == "" {
		c.SpecPath = DefaultSpecPath
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}

	if len(c.Command) == 0 {
		c.Command = []string{"go", "tool", "oapi-codegen"}
	}

	return c
}

// Generator drives client regeneration.
type Generator struct {
	cfg Config
}

// New creates a Generator, applying defaults to the config.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg.withDefaults()}
}

// ValidateSpec checks that the OpenAPI document exists and is structurally
// valid. Called standalone by the validate command and as the first step of
// Run.
func (g *Generator) ValidateSpec(ctx context.Context) error {
	if _, err := os.Stat(g.cfg.SpecPath); err != nil {
		return fmt.Errorf("%w: %s", ErrSpecNotFound, g.cfg.SpecPath)
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	doc, err := loader.LoadFromFile(g.cfg.SpecPath)
	if err != nil {
		return fmt.Errorf("%w: loading %s: %w", ErrSpecInvalid, g.cfg.SpecPath, err)
	}

	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpecInvalid, g.cfg.SpecPath, err)
	}

	return nil
}

// Clean removes all generated artifacts from the output directory. It is safe
// to call when nothing has been generated yet.
func (g *Generator) Clean() error {
	matches, err := filepath.Glob(filepath.Join(g.cfg.OutputDir, "*.gen.go"))
	if err != nil {
		return fmt.Errorf("globbing generated files: %w", err)
	}

	for _, path := range matches {
		logger.Debugf("removing stale generated file %s", path)

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}

	return nil
}

// Run executes the full pipeline: validate, clean, generate, verify. Any
// failure leaves no partially importable state, because the previous output
// is removed before the tool runs.
func (g *Generator) Run(ctx context.Context) error {
	if err := g.ValidateSpec(ctx); err != nil {
		return err
	}

	if err := g.Clean(); err != nil {
		return err
	}

	specAbs, err := filepath.Abs(g.cfg.SpecPath)
	if err != nil {
		return fmt.Errorf("resolving spec path: %w", err)
	}

	for _, config := range generatorConfigs {
		if err := g.invoke(ctx, config, specAbs); err != nil {
			return err
		}
	}

	return g.verifyOutputs()
}

// invoke runs the generator tool for one config file, in the output directory
// so relative output paths in the config land next to it.
func (g *Generator) invoke(ctx context.Context, config, specAbs string) error {
	args := make([]string, 0, len(g.cfg.Command)+1)
	args = append(args, g.cfg.Command[1:]...)
	args = append(args, "--config="+config, specAbs)

	cmd := exec.CommandContext(ctx, g.cfg.Command[0], args...)
	cmd.Dir = g.cfg.OutputDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.WithField("config", config).Infof("generating client code")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running generator for %s: %w", config, err)
	}

	return nil
}

// verifyOutputs checks the postcondition that every expected artifact exists.
func (g *Generator) verifyOutputs() error {
	for _, name := range generatedFiles {
		path := filepath.Join(g.cfg.OutputDir, name)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: expected %s", ErrNoOutput, path)
		}
	}

	return nil
}

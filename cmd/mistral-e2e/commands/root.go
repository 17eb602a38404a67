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

// Package commands wires the harness maintenance operations into a CLI.
// The test suites themselves run through `go test`; this binary only manages
// the generated client artifact.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/qaops/mistral-e2e/internal/generator"
)

// flag names
const (
	flagSpec   = "spec"
	flagOutput = "output"
)

var (
	specPath  string
	outputDir string
)

// RootCmd is the entry point for the harness CLI.
var RootCmd = &cobra.Command{
	Use:           "mistral-e2e",
	Short:         "Maintenance operations for the Mistral API e2e harness",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&specPath, flagSpec, generator.DefaultSpecPath, "Path to the OpenAPI document")
	RootCmd.PersistentFlags().StringVar(&outputDir, flagOutput, generator.DefaultOutputDir, "Directory of the generated client package")

	RootCmd.AddCommand(generateCmd())
	RootCmd.AddCommand(validateCmd())
	RootCmd.AddCommand(cleanCmd())
}

// newGenerator builds a generator from the persistent flags.
func newGenerator() *generator.Generator {
	return generator.New(generator.Config{
		SpecPath:  specPath,
		OutputDir: outputDir,
	})
}

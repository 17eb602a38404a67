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

package commands

import (
	"github.com/spf13/cobra"

	"github.com/qaops/mistral-e2e/internal/logger"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the typed API client from the OpenAPI document",
		Long: `Validates the OpenAPI document, removes the previous generated output in
full and regenerates the typed client. The generated package is a pure
function of the current document; a failed run never leaves a partial mix of
old and new artifacts importable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := newGenerator().Run(cmd.Context()); err != nil {
				return err
			}

			logger.Infof("client regenerated from %s into %s", specPath, outputDir)

			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the OpenAPI document without regenerating",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := newGenerator().ValidateSpec(cmd.Context()); err != nil {
				return err
			}

			logger.Infof("%s is valid", specPath)

			return nil
		},
	}
}

func cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated client artifacts",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := newGenerator().Clean(); err != nil {
				return err
			}

			logger.Infof("removed generated artifacts from %s", outputDir)

			return nil
		},
	}
}

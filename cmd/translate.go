/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

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
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/mdtranslate/internal"
	"github.com/valpere/mdtranslate/internal/config"
	"github.com/valpere/mdtranslate/internal/workflow"
)

var (
	toCN bool
	toEN bool

	modelName  string
	baseURL    string
	timeout    time.Duration
	skipVerify bool
	dbPath     string
)

func runTranslate(cmd *cobra.Command, args []string) error {
	inputFile := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return errReported
	}
	if modelName != "" {
		cfg.Model = modelName
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	// Checked before any collaborator is built so a bad path never costs a
	// network call.
	if _, err := os.Stat(inputFile); err != nil {
		fmt.Printf("Error: File '%s' not found\n", inputFile)
		return errReported
	}

	target := internal.SimplifiedChinese
	if toEN {
		target = internal.English
	}

	pipe, cleanup, err := buildPipeline(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return errReported
	}
	defer cleanup()

	if err := pipe.ProcessFile(context.Background(), inputFile, target); err != nil {
		fmt.Printf("Error processing %s: %v\n", inputFile, unwrapStep(err))

		// Translation and verification failures are terminal for this file
		// but not for the process; read and write failures are.
		var step *workflow.StepError
		if errors.As(err, &step) && (step.Kind == workflow.KindTranslate || step.Kind == workflow.KindVerify) {
			return nil
		}
		return errReported
	}
	return nil
}

// unwrapStep reports the underlying cause so the message names the file once.
func unwrapStep(err error) error {
	var step *workflow.StepError
	if errors.As(err, &step) {
		return step.Err
	}
	return err
}

func init() {
	rootCmd.Flags().BoolVar(&toCN, "to-cn", false, "Translate to Simplified Chinese (default)")
	rootCmd.Flags().BoolVar(&toEN, "to-en", false, "Translate to English")
	rootCmd.Flags().StringVar(&modelName, "model", "", "Chat model name (overrides config)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Chat API base URL (overrides config)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP client timeout (overrides config)")
	rootCmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "Skip the quality verification call")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "SQLite path for run history (disabled when empty)")

	rootCmd.MarkFlagsMutuallyExclusive("to-cn", "to-en")
}

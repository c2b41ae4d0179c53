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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// errReported marks failures whose message was already printed by the
// command itself; Execute must not repeat them.
var errReported = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "mdtranslate <file>",
	Short: "Markdown translator with LLM quality verification",
	Long: `Translate a Markdown file between English and Simplified Chinese using a
chat-completions LLM API, then ask the same model to score the translation.

The translation is written into the current working directory as
<stem>_cn.md or <stem>_en.md. The quality report is printed verbatim.

Use "mdtranslate history" to inspect past runs recorded with --db.`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTranslate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

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
	"fmt"
	"os"

	"github.com/valpere/mdtranslate/internal/chat"
	"github.com/valpere/mdtranslate/internal/config"
	"github.com/valpere/mdtranslate/internal/store"
	"github.com/valpere/mdtranslate/internal/translator"
	"github.com/valpere/mdtranslate/internal/validator"
	"github.com/valpere/mdtranslate/internal/verifier"
	"github.com/valpere/mdtranslate/internal/workflow"
)

// buildPipeline assembles the collaborators for one translation run. The
// returned cleanup closes the history store when one was opened.
func buildPipeline(cfg *config.Config) (*workflow.Pipeline, func(), error) {
	client := chat.New(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout)

	pipe := &workflow.Pipeline{
		Translator: translator.New(client),
		Verifier:   verifier.New(client),
		Validator:  validator.New(),
		Model:      cfg.Model,
		SkipVerify: skipVerify,
		Out:        os.Stdout,
		Errout:     os.Stderr,
	}

	cleanup := func() {}
	if dbPath != "" {
		db, err := store.New(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open history database: %w", err)
		}
		pipe.History = db
		cleanup = func() { db.Close() }
	}

	return pipe, cleanup, nil
}

// Package workflow runs the read, translate, write, verify pipeline for a
// single Markdown file. Execution is strictly linear: each step blocks until
// the previous one finished, and the first failure ends the run.
package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/valpere/mdtranslate/internal"
	"github.com/valpere/mdtranslate/internal/markdown"
	"github.com/valpere/mdtranslate/internal/store"
	"github.com/valpere/mdtranslate/internal/translator"
	"github.com/valpere/mdtranslate/internal/validator"
	"github.com/valpere/mdtranslate/internal/verifier"
)

// ErrorKind identifies the step a pipeline failure came from so the caller
// can decide per kind whether to abort or to report and carry on.
type ErrorKind int

const (
	KindRead ErrorKind = iota
	KindTranslate
	KindWrite
	KindVerify
)

func (k ErrorKind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindTranslate:
		return "translate"
	case KindWrite:
		return "write"
	case KindVerify:
		return "verify"
	}
	return "unknown"
}

// StepError wraps a collaborator failure with the step it occurred in and
// the input file being processed.
type StepError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Pipeline wires the collaborators for one run. Out receives user-facing
// results; Errout receives progress lines and warnings. Validator and
// History are optional.
type Pipeline struct {
	Translator translator.Translator
	Verifier   verifier.Verifier
	Validator  *validator.Validator
	History    *store.Store
	Model      string
	SkipVerify bool
	OutDir     string // empty means the current working directory
	Out        io.Writer
	Errout     io.Writer
}

// OutputName derives the output filename from the input path's stem and the
// target's suffix. The file lands in the working directory, not the input's
// directory, and silently overwrites an existing file of the same name.
func OutputName(inputPath string, target internal.TargetLanguage) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + target.Suffix()
}

// ProcessFile runs the pipeline once for inputPath.
//
// Failure semantics follow the returned StepError's kind: a read failure
// aborts before any network call; a translate failure leaves no output file
// and skips verification; a verify failure leaves the already-written output
// file in place.
func (p *Pipeline) ProcessFile(ctx context.Context, inputPath string, target internal.TargetLanguage) error {
	start := time.Now()

	original, err := os.ReadFile(inputPath)
	if err != nil {
		return &StepError{Kind: KindRead, Path: inputPath, Err: err}
	}

	translated, err := p.Translator.Translate(ctx, string(original), target)
	if err != nil {
		return &StepError{Kind: KindTranslate, Path: inputPath, Err: err}
	}

	outputPath := filepath.Join(p.OutDir, OutputName(inputPath, target))
	// The translated text goes to disk exactly as the service returned it.
	if err := os.WriteFile(outputPath, []byte(translated), 0644); err != nil {
		return &StepError{Kind: KindWrite, Path: inputPath, Err: err}
	}
	fmt.Fprintf(p.Out, "Translated %s -> %s\n", inputPath, outputPath)

	p.warnOnStructureChange(string(original), translated)
	p.warnOnLanguageMismatch(translated, target)

	var report string
	if !p.SkipVerify {
		fmt.Fprintf(p.Errout, "Verifying translation quality...\n")
		report, err = p.Verifier.Verify(ctx, string(original), translated, target)
		if err != nil {
			return &StepError{Kind: KindVerify, Path: inputPath, Err: err}
		}
		fmt.Fprintf(p.Out, "\nQuality Assessment:\n%s\n", report)
	}

	p.record(ctx, inputPath, outputPath, target, report, time.Since(start))
	return nil
}

// warnOnStructureChange compares Markdown element counts between source and
// translation and reports the first mismatch. Display-only.
func (p *Pipeline) warnOnStructureChange(original, translated string) {
	diff := markdown.Compare(markdown.Collect(original), markdown.Collect(translated))
	if diff != "" {
		fmt.Fprintf(p.Errout, "Warning: Markdown structure changed (%s)\n", diff)
	}
}

// warnOnLanguageMismatch checks the translation is in the target language.
// Display-only.
func (p *Pipeline) warnOnLanguageMismatch(translated string, target internal.TargetLanguage) {
	if p.Validator == nil {
		return
	}
	if ok, err := p.Validator.IsValid(translated, target); !ok {
		fmt.Fprintf(p.Errout, "Warning: translation language check failed: %v\n", err)
	}
}

// record appends the run to the history store when one is configured.
// Best-effort: a failed write is reported but never fails the run.
func (p *Pipeline) record(ctx context.Context, in, out string, target internal.TargetLanguage, report string, elapsed time.Duration) {
	if p.History == nil {
		return
	}
	run := internal.RunRecord{
		InputFile:  in,
		OutputFile: out,
		TargetLang: target.String(),
		Model:      p.Model,
		Report:     report,
		DurationMS: elapsed.Milliseconds(),
	}
	if _, err := p.History.SaveRun(ctx, run); err != nil {
		fmt.Fprintf(p.Errout, "Warning: failed to record run: %v\n", err)
	}
}

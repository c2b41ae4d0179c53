// Package validator checks that a translation is written in the expected
// target language. Mismatches are reported as warnings only; the translated
// text itself is never touched.
package validator

import (
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/mdtranslate/internal"
)

// minValidationLength is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and pass unchecked.
const minValidationLength = 20

// Validator detects the language of translated text. The underlying detector
// is expensive to build; reuse the instance.
type Validator struct {
	det lingua.LanguageDetector
}

// New creates a Validator restricted to the two languages this tool targets.
func New() *Validator {
	det := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Chinese).
		Build()
	return &Validator{det: det}
}

// IsValid returns true when translatedText appears to be written in the
// target language.
//
// Short texts (fewer than minValidationLength runes) and texts whose
// language cannot be determined pass without error. When the detected
// language differs from the target the returned error names both codes.
func (v *Validator) IsValid(translatedText string, target internal.TargetLanguage) (bool, error) {
	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	// Detector is unreliable for very short texts; skip validation.
	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	lang, ok := v.det.DetectLanguageOf(text)
	if !ok {
		// Ambiguous language, cannot validate. Pass through.
		return true, nil
	}

	detected := strings.ToLower(lang.IsoCode639_1().String())
	if detected != target.ISO() {
		return false, fmt.Errorf("expected %s but detected %s", target.ISO(), detected)
	}

	return true, nil
}

package internal

import (
	"time"

	"golang.org/x/text/language"
)

// TargetLanguage is the closed set of translation targets.
type TargetLanguage int

const (
	English TargetLanguage = iota
	SimplifiedChinese
)

// Tag returns the BCP 47 tag of the target language.
func (t TargetLanguage) Tag() language.Tag {
	if t == SimplifiedChinese {
		return language.SimplifiedChinese
	}
	return language.English
}

// Name is the human-readable language name used in prompts.
func (t TargetLanguage) Name() string {
	if t == SimplifiedChinese {
		return "Simplified Chinese"
	}
	return "English"
}

// Suffix is appended to the input file's stem to derive the output filename.
func (t TargetLanguage) Suffix() string {
	if t == SimplifiedChinese {
		return "_cn.md"
	}
	return "_en.md"
}

// Direction labels the language pair for the quality verifier.
func (t TargetLanguage) Direction() string {
	if t == English {
		return "Chinese to English"
	}
	return "English to Chinese"
}

// ISO returns the ISO 639-1 code of the target language ("en" or "zh").
func (t TargetLanguage) ISO() string {
	base, _ := t.Tag().Base()
	return base.String()
}

func (t TargetLanguage) String() string {
	return t.Tag().String()
}

// RunRecord is one completed translation run as persisted in the history
// store. Report holds the verifier's free-form quality text verbatim.
type RunRecord struct {
	ID         string    `json:"id"`
	InputFile  string    `json:"input_file"`
	OutputFile string    `json:"output_file"`
	TargetLang string    `json:"target_lang"`
	Model      string    `json:"model"`
	Report     string    `json:"report"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

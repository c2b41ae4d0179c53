// Package verifier asks the chat service to assess translation quality.
// The report is free text with a 0-100 score and prose feedback; it is
// displayed to the user verbatim and never parsed.
package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/valpere/mdtranslate/internal"
	"github.com/valpere/mdtranslate/internal/chat"
)

// Verifier produces a quality report for a translation.
type Verifier interface {
	Verify(ctx context.Context, original, translated string, target internal.TargetLanguage) (string, error)
}

// ChatVerifier verifies via a chat-completions service.
type ChatVerifier struct {
	chat chat.Completer
}

// New creates a verifier on top of the given completer.
func New(c chat.Completer) *ChatVerifier {
	return &ChatVerifier{chat: c}
}

const systemPrompt = `You are a translation quality expert. Compare the original and translated Markdown documents and provide:
1. A score from 0-100
2. Brief feedback on accuracy and preservation of formatting
3. Specific issues found (if any)`

// Verify sends both documents with the direction label and returns the
// completion text verbatim.
func (v *ChatVerifier) Verify(ctx context.Context, original, translated string, target internal.TargetLanguage) (string, error) {
	messages := []chat.Message{
		{Role: chat.RoleSystem, Content: systemPrompt},
		{Role: chat.RoleUser, Content: buildVerificationPrompt(original, translated, target)},
	}

	out, err := v.chat.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("verification request failed: %w", err)
	}
	return out, nil
}

func buildVerificationPrompt(original, translated string, target internal.TargetLanguage) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Direction: %s\n\n", target.Direction()))
	sb.WriteString(fmt.Sprintf("Original:\n%s\n\n", original))
	sb.WriteString(fmt.Sprintf("Translation:\n%s", translated))
	return sb.String()
}

// Package translator sends a Markdown document to the chat service for
// translation into the target language.
package translator

import (
	"context"
	"fmt"

	"github.com/valpere/mdtranslate/internal"
	"github.com/valpere/mdtranslate/internal/chat"
)

// Translator produces a translated document. The returned text is the
// service's first completion verbatim; callers must write it to disk
// without any transformation.
type Translator interface {
	Translate(ctx context.Context, doc string, target internal.TargetLanguage) (string, error)
}

// ChatTranslator translates via a chat-completions service.
type ChatTranslator struct {
	chat chat.Completer
}

// New creates a translator on top of the given completer.
func New(c chat.Completer) *ChatTranslator {
	return &ChatTranslator{chat: c}
}

// Translate sends the document with a Markdown-preserving instruction and
// returns the completion text unmodified. Documents of any size are sent in
// one request; there is no chunking.
func (t *ChatTranslator) Translate(ctx context.Context, doc string, target internal.TargetLanguage) (string, error) {
	messages := []chat.Message{
		{Role: chat.RoleSystem, Content: systemPrompt(target)},
		{Role: chat.RoleUser, Content: doc},
	}

	out, err := t.chat.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	return out, nil
}

func systemPrompt(target internal.TargetLanguage) string {
	return fmt.Sprintf(
		"Translate this Markdown document to %s, preserving all Markdown formatting exactly: headings, lists, code fences, emphasis, links and tables must keep their structure unchanged.",
		target.Name(),
	)
}

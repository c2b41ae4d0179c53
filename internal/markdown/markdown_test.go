package markdown

import (
	"strings"
	"testing"
)

const sampleDoc = `# Title

## Section

Some text with a [link](https://example.com).

- item one
- item two

` + "```go\nfmt.Println(\"hi\")\n```" + `

| a | b |
|---|---|
| 1 | 2 |
`

func TestCollect(t *testing.T) {
	s := Collect(sampleDoc)

	if s.Headings != 2 {
		t.Errorf("expected 2 headings, got %d", s.Headings)
	}
	if s.CodeBlocks != 1 {
		t.Errorf("expected 1 code block, got %d", s.CodeBlocks)
	}
	if s.Links != 1 {
		t.Errorf("expected 1 link, got %d", s.Links)
	}
	if s.Lists != 1 {
		t.Errorf("expected 1 list, got %d", s.Lists)
	}
	if s.Tables != 1 {
		t.Errorf("expected 1 table, got %d", s.Tables)
	}
}

func TestCollect_Empty(t *testing.T) {
	s := Collect("")
	if s != (Stats{}) {
		t.Errorf("expected zero stats for empty document, got %+v", s)
	}
}

func TestCompare_Equal(t *testing.T) {
	// A faithful translation keeps the same structure.
	translated := strings.Replace(sampleDoc, "Title", "标题", 1)

	diff := Compare(Collect(sampleDoc), Collect(translated))
	if diff != "" {
		t.Errorf("expected no difference, got %q", diff)
	}
}

func TestCompare_HeadingDropped(t *testing.T) {
	translated := strings.Replace(sampleDoc, "## Section\n", "", 1)

	diff := Compare(Collect(sampleDoc), Collect(translated))
	if !strings.Contains(diff, "headings") {
		t.Errorf("expected heading difference, got %q", diff)
	}
}

func TestCompare_CodeBlockDropped(t *testing.T) {
	source := Stats{Headings: 1, CodeBlocks: 2}
	translated := Stats{Headings: 1, CodeBlocks: 1}

	diff := Compare(source, translated)
	if diff != "code blocks: 2 -> 1" {
		t.Errorf("unexpected difference description: %q", diff)
	}
}

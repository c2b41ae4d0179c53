// Package markdown extracts structural statistics from Markdown documents
// so the workflow can warn when a translation changed the document shape.
// The check is display-only; translated text is never modified.
package markdown

import (
	"fmt"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Stats counts the structural elements a translation must preserve.
type Stats struct {
	Headings   int
	CodeBlocks int
	Links      int
	Lists      int
	Tables     int
}

// Collect parses doc and counts its structural elements.
func Collect(doc string) Stats {
	ext := parser.CommonExtensions | parser.Attributes
	p := parser.NewWithExtensions(ext)
	root := p.Parse([]byte(doc))

	var s Stats
	ast.WalkFunc(root, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch node.(type) {
		case *ast.Heading:
			s.Headings++
		case *ast.CodeBlock:
			s.CodeBlocks++
		case *ast.Link:
			s.Links++
		case *ast.List:
			s.Lists++
		case *ast.Table:
			s.Tables++
		}
		return ast.GoToNext
	})
	return s
}

// Compare describes the first structural difference between the source and
// translated documents, or returns "" when the shapes match.
func Compare(source, translated Stats) string {
	switch {
	case source.Headings != translated.Headings:
		return fmt.Sprintf("headings: %d -> %d", source.Headings, translated.Headings)
	case source.CodeBlocks != translated.CodeBlocks:
		return fmt.Sprintf("code blocks: %d -> %d", source.CodeBlocks, translated.CodeBlocks)
	case source.Links != translated.Links:
		return fmt.Sprintf("links: %d -> %d", source.Links, translated.Links)
	case source.Lists != translated.Lists:
		return fmt.Sprintf("lists: %d -> %d", source.Lists, translated.Lists)
	case source.Tables != translated.Tables:
		return fmt.Sprintf("tables: %d -> %d", source.Tables, translated.Tables)
	}
	return ""
}

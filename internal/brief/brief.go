// Package brief parses Living Lab briefing documents: markdown files kept
// next to the reference data that describe a region, its context, and
// pointers to source material.
package brief

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is one reference found in a brief.
type Link struct {
	Title  string `json:"title,omitempty"`
	Target string `json:"target"`
}

// Brief is the parsed briefing document.
type Brief struct {
	Title    string   `json:"title,omitempty"`
	Sections []string `json:"sections,omitempty"`
	Links    []Link   `json:"links,omitempty"`
}

// Load reads and parses a briefing file. A missing file returns (nil, nil):
// briefs are optional companions to the lab data.
func Load(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading brief: %w", err)
	}
	return Parse(data), nil
}

// Parse extracts the document title (first level-1 heading), the section
// headings below it, and every link destination.
func Parse(source []byte) *Brief {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	b := &Brief{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			title := headingText(v, source)
			if v.Level == 1 && b.Title == "" {
				b.Title = title
			} else if v.Level > 1 {
				b.Sections = append(b.Sections, title)
			}
		case *ast.Link:
			b.Links = append(b.Links, Link{
				Title:  strings.TrimSpace(string(v.Title)),
				Target: string(v.Destination),
			})
		case *ast.AutoLink:
			target := string(v.Label(source))
			if len(v.Protocol) > 0 && !strings.HasPrefix(target, string(v.Protocol)) {
				target = string(v.Protocol) + target
			}
			b.Links = append(b.Links, Link{Target: target})
		}
		return ast.WalkContinue, nil
	})
	return b
}

func headingText(h *ast.Heading, source []byte) string {
	var sb strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return strings.TrimSpace(sb.String())
}

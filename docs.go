package arm5sheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HeadingClass is added to every heading of the converted documentation so
// the sheet stylesheet can render them like its own section labels.
const HeadingClass = "heading_label"

// DocConverter turns the sheet's documentation markdown into an HTML
// fragment ready for embedding in the documentation tab.
type DocConverter struct {
	md goldmark.Markdown
}

// NewDocConverter creates a DocConverter with GFM extensions and class-based
// syntax highlighting.
func NewDocConverter() *DocConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // classes so the sheet CSS stays in control
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &DocConverter{md: md}
}

// Convert renders markdown to an HTML fragment and tags every h1-h6 with
// HeadingClass. Supports context cancellation via goroutine + select pattern
// since Goldmark doesn't natively support context.
func (c *DocConverter) Convert(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyMarkdown
	}
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		annotated, err := annotateHeadings(buf.String())
		done <- result{html: annotated, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// annotateHeadings appends HeadingClass to the class list of every h1-h6 in
// the fragment, then re-renders it.
func annotateHeadings(fragment string) (string, error) {
	body := &nethtml.Node{
		Type:     nethtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := nethtml.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLAnnotation, err)
	}

	var buf bytes.Buffer
	for _, node := range nodes {
		tagHeadings(node)
		if err := nethtml.Render(&buf, node); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLAnnotation, err)
		}
	}
	return buf.String(), nil
}

// tagHeadings walks the node tree depth-first, adding HeadingClass to
// heading elements.
func tagHeadings(n *nethtml.Node) {
	if n.Type == nethtml.ElementNode && isHeading(n.DataAtom) {
		addClass(n, HeadingClass)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		tagHeadings(child)
	}
}

func isHeading(a atom.Atom) bool {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// addClass appends class to the node's class attribute, creating it if
// absent and skipping the append if already present.
func addClass(n *nethtml.Node, class string) {
	for i, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, existing := range strings.Fields(attr.Val) {
			if existing == class {
				return
			}
		}
		n.Attr[i].Val = strings.TrimSpace(attr.Val + " " + class)
		return
	}
	n.Attr = append(n.Attr, nethtml.Attribute{Key: "class", Val: class})
}

// Package markdown converts markdown sources to the HTML the Markdown
// widget displays, with fenced code blocks syntax-highlighted.
package markdown

import (
	"bytes"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// markdownInstance is initialized once and reused. The configuration
// (extensions, options) never changes and the goldmark parser is safe
// to share; parsing creates per-call state via Parse(reader).
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

const highlightStyle = "github"

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
			),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(
					util.Prioritized(&codeBlockRenderer{}, 200),
				),
			),
		)
	})
	return markdownInstance
}

// Render converts markdown source to HTML.
func Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := getMarkdown().Convert(source, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// codeBlockRenderer replaces the default fenced-code renderer with
// chroma highlighting. Unknown languages fall back to chroma's
// plaintext lexer, so the output is always a styled block.
type codeBlockRenderer struct{}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCode)
}

func (r *codeBlockRenderer) renderFencedCode(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	lang := string(n.Language(source))

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(source))
	}

	if err := quick.Highlight(w, code.String(), lang, "html", highlightStyle); err != nil {
		// Highlighting failed; emit an escaped plain block instead of
		// dropping the content.
		_, _ = w.WriteString("<pre><code>")
		r.writeEscaped(w, code.Bytes())
		_, _ = w.WriteString("</code></pre>\n")
	}
	return ast.WalkContinue, nil
}

func (r *codeBlockRenderer) writeEscaped(w util.BufWriter, source []byte) {
	_, _ = w.Write(util.EscapeHTML(source))
}

// ParseTitle returns the text of the document's first level-1 heading,
// or "". The markdown viewer uses it for page titles.
func ParseTitle(source []byte) string {
	md := getMarkdown()
	doc := md.Parser().Parse(text.NewReader(source))
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || title != "" {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			var buf bytes.Buffer
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf.Write(t.Segment.Value(source))
				}
			}
			title = buf.String()
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

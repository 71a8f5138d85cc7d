package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasic(t *testing.T) {
	html, err := Render([]byte("# Hello\n\nSome *emphasis* and a [link](https://example.com)."))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"<h1", "Hello", "<em>emphasis</em>", `href="https://example.com"`} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	html, err := Render([]byte(src))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered:\n%s", html)
	}
}

func TestRenderHighlightedCode(t *testing.T) {
	src := "```go\npackage main\n\nfunc main() {}\n```\n"
	html, err := Render([]byte(src))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// chroma's html formatter wraps output in a styled pre and spans
	// token classes inline.
	if !strings.Contains(html, "<pre") {
		t.Errorf("no pre block in output:\n%s", html)
	}
	if !strings.Contains(html, "<span") {
		t.Errorf("code block not highlighted:\n%s", html)
	}
	if !strings.Contains(html, "main") {
		t.Errorf("code content missing:\n%s", html)
	}
}

func TestRenderUnknownLanguage(t *testing.T) {
	src := "```nosuchlang\nplain text content\n```\n"
	html, err := Render([]byte(src))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "plain text content") {
		t.Errorf("fallback dropped content:\n%s", html)
	}
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"heading first", "# Demo Page\n\nbody\n", "Demo Page"},
		{"heading later", "intro\n\n# Actual Title\n", "Actual Title"},
		{"no heading", "just text\n", ""},
		{"deeper heading only", "## Sub\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTitle([]byte(tt.src)); got != tt.want {
				t.Errorf("ParseTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

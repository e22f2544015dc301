// Package notes renders a standalone markdown document as an HTML page.
package notes

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter turns markdown into HTML with tables, highlighted fenced code,
// and single newlines rendered as line breaks.
type Converter struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewConverter builds a Converter.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)
	return &Converter{
		md:   md,
		tmpl: template.Must(template.New("notes").Parse(pageTemplate)),
	}
}

// Convert renders markdown source to an HTML fragment.
func (c *Converter) Convert(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Page writes a full HTML page for the given markdown source.
func (c *Converter) Page(w io.Writer, title string, src []byte) error {
	content, err := c.Convert(src)
	if err != nil {
		return err
	}
	return c.tmpl.Execute(w, struct {
		Title   string
		Content template.HTML
	}{Title: title, Content: content})
}

// RenderFile reads a markdown file and writes it as a page. The title is
// the first "# " heading, or the file name when there is none.
func (c *Converter) RenderFile(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading notes %s: %w", path, err)
	}
	return c.Page(w, Title(string(src), path), src)
}

// Title pulls the first # heading from markdown content, or falls back to
// the file name without extension.
func Title(content, path string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { max-width: 900px; margin: 40px auto; padding: 0 20px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
    h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 10px; }
    h2 { color: #34495e; margin-top: 30px; border-bottom: 1px solid #ecf0f1; padding-bottom: 5px; }
    h3 { color: #7f8c8d; }
    code { background: #f4f4f4; padding: 2px 6px; border-radius: 3px; font-family: 'Monaco', 'Courier New', monospace; }
    pre { padding: 15px; border-radius: 5px; overflow-x: auto; }
    pre code { background: none; color: inherit; }
    table { border-collapse: collapse; width: 100%; margin: 20px 0; }
    th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
    th { background: #3498db; color: white; }
    tr:nth-child(even) { background: #f9f9f9; }
    blockquote { border-left: 4px solid #3498db; margin: 0; padding-left: 20px; color: #7f8c8d; }
    a { color: #3498db; text-decoration: none; }
    a:hover { text-decoration: underline; }
    hr { border: none; border-top: 2px solid #ecf0f1; margin: 30px 0; }
  </style>
</head>
<body>
  {{.Content}}
</body>
</html>`

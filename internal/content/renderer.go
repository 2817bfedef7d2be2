package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/underoot/maksugr.com/internal/domain"
	"github.com/underoot/maksugr.com/internal/ports"
)

// Renderer converts note bodies to HTML with the site's fixed
// component substitutions applied. The engine is built once and is
// safe for reuse across posts.
type Renderer struct {
	md goldmark.Markdown
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer builds the site's markdown engine: GFM, auto heading
// IDs, raw HTML passthrough (authored content is trusted), and the
// component renderer for links and images.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newComponentRenderer(html.WithUnsafe()), 100),
			),
		),
	)
	return &Renderer{md: md}
}

// Render produces the markup string for one post body.
func (r *Renderer) Render(post domain.Post) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(post.Body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// componentRenderer overrides link and image rendering: external
// links open in a new tab, images load lazily. Output is fully
// deterministic for identical input.
type componentRenderer struct {
	html.Config
}

func newComponentRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &componentRenderer{Config: html.NewConfig()}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

// RegisterFuncs registers the overridden node kinds.
func (r *componentRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *componentRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<a href="`)
	if r.Unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.Writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	if isExternal(n.Destination) {
		_, _ = w.WriteString(` target="_blank" rel="noopener"`)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *componentRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	_, _ = w.WriteString(`<img src="`)
	if r.Unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(n.Text(source)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.Writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	_, _ = w.WriteString(` loading="lazy"`)
	if r.XHTML {
		_, _ = w.WriteString(" />")
	} else {
		_, _ = w.WriteString(">")
	}
	return ast.WalkSkipChildren, nil
}

func isExternal(destination []byte) bool {
	return bytes.HasPrefix(destination, []byte("http://")) ||
		bytes.HasPrefix(destination, []byte("https://"))
}

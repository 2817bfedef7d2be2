package feed

import (
	"fmt"

	"github.com/gorilla/feeds"

	"github.com/underoot/maksugr.com/internal/domain"
	"github.com/underoot/maksugr.com/internal/ports"
)

// ItemBuilder maps one post into a syndication item: render, rewrite
// relative links against the post's canonical URL, sanitize, then
// fill the record. Id and Link are always the canonical URL.
type ItemBuilder struct {
	renderer ports.Renderer
	baseURL  string
	section  string
}

// NewItemBuilder wires the renderer and the site's URL layout.
func NewItemBuilder(renderer ports.Renderer, baseURL, section string) *ItemBuilder {
	return &ItemBuilder{renderer: renderer, baseURL: baseURL, section: section}
}

// CanonicalURL returns the single authoritative URL for a post.
func (b *ItemBuilder) CanonicalURL(post domain.Post) string {
	return fmt.Sprintf("%s/%s/%s", b.baseURL, b.section, post.Slug)
}

// Build produces the item or fails; a partial item is never returned.
func (b *ItemBuilder) Build(post domain.Post) (*feeds.Item, error) {
	canonical := b.CanonicalURL(post)

	markup, err := b.renderer.Render(post)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", post.Slug, err)
	}

	markup, err = RewriteLinks(markup, b.baseURL, canonical)
	if err != nil {
		return nil, fmt.Errorf("rewrite links %s: %w", post.Slug, err)
	}

	markup, err = Sanitize(markup)
	if err != nil {
		return nil, fmt.Errorf("sanitize %s: %w", post.Slug, err)
	}

	return &feeds.Item{
		Title:       post.Title,
		Id:          canonical,
		Link:        &feeds.Link{Href: canonical},
		Description: post.Summary,
		Created:     post.PublishedAt,
		Content:     markup,
	}, nil
}

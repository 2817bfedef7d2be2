package feed

import (
	"cmp"
	"slices"

	"github.com/gorilla/feeds"

	"github.com/underoot/maksugr.com/internal/domain"
)

// NewFeed builds channel-level metadata once per run. Items are
// accumulated afterwards through AddItem.
func NewFeed(meta domain.FeedMeta) *feeds.Feed {
	return &feeds.Feed{
		Title:       meta.Title,
		Description: meta.Description,
		Link:        &feeds.Link{Href: meta.SiteURL},
		Id:          meta.SiteURL,
		Author:      &feeds.Author{Name: meta.Author.Name, Email: meta.Author.Email},
		Copyright:   meta.Copyright,
		Image: &feeds.Image{
			Url:   meta.Image,
			Title: meta.Title,
			Link:  meta.SiteURL,
		},
	}
}

// AddItem appends a single item, preserving insertion order. Channel
// timestamps track the newest item instead of wall-clock time so that
// rebuilding unchanged content yields byte-identical documents.
func AddItem(f *feeds.Feed, item *feeds.Item) {
	f.Add(item)
	if item.Created.After(f.Created) {
		f.Created = item.Created
		f.Updated = item.Created
	}
}

// SortPosts orders posts newest-first. Ties break on slug so output
// never depends on directory enumeration order.
func SortPosts(posts []domain.Post) {
	slices.SortStableFunc(posts, func(a, b domain.Post) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Slug, b.Slug)
	})
}

package domain

import "time"

// Post is a single authored note loaded from the content directory.
// Body holds the markdown source with front matter stripped; rendering
// happens downstream. Posts are immutable after loading.
type Post struct {
	Slug        string
	Title       string
	Summary     string
	PublishedAt time.Time
	Draft       bool
	Body        []byte
}

// Author identifies the feed author across all syndication formats.
type Author struct {
	Name  string
	Email string
	Link  string
}

// FeedURLs are the absolute URLs of the emitted feed documents, used
// for self/alternate link advertisement and hub pings.
type FeedURLs struct {
	RSS  string
	Atom string
	JSON string
}

// FeedMeta carries channel-level metadata. It is built once per run
// and never mutated afterwards.
type FeedMeta struct {
	Title       string
	Description string
	SiteURL     string
	Language    string
	Image       string
	Favicon     string
	Copyright   string
	Generator   string
	Author      Author
	FeedURLs    FeedURLs
}

package feed

import (
	"encoding/xml"
	"fmt"

	"github.com/gorilla/feeds"

	"github.com/underoot/maksugr.com/internal/domain"
)

// Output file names under the feeds directory.
const (
	RSSFilename  = "feed.xml"
	AtomFilename = "atom.xml"
	JSONFilename = "feed.json"
)

const (
	rssMIME  = "application/rss+xml"
	atomMIME = "application/atom+xml"
	jsonMIME = "application/feed+json"
	htmlMIME = "text/html"

	atomNamespace    = "http://www.w3.org/2005/Atom"
	contentNamespace = "http://purl.org/rss/1.0/modules/content/"
)

// atomLink is the channel-level link element shared by the XML
// formats; RSS borrows it through the atom namespace, which is the
// conventional way to advertise self/alternate feeds in RSS 2.0.
type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

func encodeXML(v any) (string, error) {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal xml: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}

// rssFormat emits RSS 2.0. gorilla/feeds carries a single channel
// link, so the document wraps its channel struct to add atom:link
// self/alternate elements.
type rssFormat struct{}

type rssDocument struct {
	XMLName          xml.Name `xml:"rss"`
	Version          string   `xml:"version,attr"`
	ContentNamespace string   `xml:"xmlns:content,attr"`
	AtomNamespace    string   `xml:"xmlns:atom,attr"`
	Channel          *rssChannel
}

type rssChannel struct {
	*feeds.RssFeed
	AtomLinks []atomLink `xml:"atom:link"`
}

func (rssFormat) Name() string     { return "rss2" }
func (rssFormat) Filename() string { return RSSFilename }

func (rssFormat) Encode(f *feeds.Feed, meta domain.FeedMeta) (string, error) {
	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Language = meta.Language
	rss.Generator = meta.Generator

	doc := &rssDocument{
		Version:          "2.0",
		ContentNamespace: contentNamespace,
		AtomNamespace:    atomNamespace,
		Channel: &rssChannel{
			RssFeed: rss,
			AtomLinks: []atomLink{
				{Href: meta.FeedURLs.RSS, Rel: "self", Type: rssMIME},
				{Href: meta.FeedURLs.Atom, Rel: "alternate", Type: atomMIME},
				{Href: meta.FeedURLs.JSON, Rel: "alternate", Type: jsonMIME},
			},
		},
	}
	return encodeXML(doc)
}

// atomFormat emits Atom 1.0 with the full self/alternate link set in
// place of gorilla's single channel link.
type atomFormat struct{}

type atomDocument struct {
	*feeds.AtomFeed
	Links []atomLink `xml:"link"`
}

func (atomFormat) Name() string     { return "atom" }
func (atomFormat) Filename() string { return AtomFilename }

func (atomFormat) Encode(f *feeds.Feed, meta domain.FeedMeta) (string, error) {
	atom := (&feeds.Atom{Feed: f}).AtomFeed()
	atom.Link = nil
	atom.Icon = meta.Favicon
	atom.Logo = meta.Image

	doc := &atomDocument{
		AtomFeed: atom,
		Links: []atomLink{
			{Href: meta.SiteURL, Rel: "alternate", Type: htmlMIME},
			{Href: meta.FeedURLs.Atom, Rel: "self", Type: atomMIME},
			{Href: meta.FeedURLs.RSS, Rel: "alternate", Type: rssMIME},
			{Href: meta.FeedURLs.JSON, Rel: "alternate", Type: jsonMIME},
		},
	}
	return encodeXML(doc)
}

// jsonFormat emits JSON Feed. The format defines no alternate-feed
// field, so the document carries feed_url and home_page_url only.
type jsonFormat struct{}

func (jsonFormat) Name() string     { return "json" }
func (jsonFormat) Filename() string { return JSONFilename }

func (jsonFormat) Encode(f *feeds.Feed, meta domain.FeedMeta) (string, error) {
	jf := (&feeds.JSON{Feed: f}).JSONFeed()
	jf.HomePageUrl = meta.SiteURL
	jf.FeedUrl = meta.FeedURLs.JSON
	jf.Icon = meta.Image
	jf.Favicon = meta.Favicon

	out, err := jf.ToJSON()
	if err != nil {
		return "", fmt.Errorf("marshal json feed: %w", err)
	}
	return out + "\n", nil
}

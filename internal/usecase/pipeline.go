package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/underoot/maksugr.com/internal/domain"
	"github.com/underoot/maksugr.com/internal/feed"
	"github.com/underoot/maksugr.com/internal/ports"
)

// PipelineDeps wires all collaborators into the feed pipeline.
type PipelineDeps struct {
	Source  ports.PostSource
	Builder *feed.ItemBuilder
	Emitter *feed.Emitter
	Meta    domain.FeedMeta
	Limit   int
	Pinger  ports.Pinger
	Logger  *slog.Logger
}

// Pipeline implements the feed-generation workflow: load every post,
// build every item, then write all formats as a single unit of work.
type Pipeline struct {
	source  ports.PostSource
	builder *feed.ItemBuilder
	emitter *feed.Emitter
	meta    domain.FeedMeta
	limit   int
	pinger  ports.Pinger
	logger  *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:  deps.Source,
		builder: deps.Builder,
		emitter: deps.Emitter,
		meta:    deps.Meta,
		limit:   deps.Limit,
		pinger:  deps.Pinger,
		logger:  deps.Logger,
	}
}

// GenerateMainFeeds runs the whole batch. Items are built before any
// file is touched; a failure at any post aborts the run with no feed
// files rewritten.
func (p *Pipeline) GenerateMainFeeds(ctx context.Context) error {
	if p.source == nil {
		return fmt.Errorf("post source is not configured")
	}
	if p.builder == nil || p.emitter == nil {
		return fmt.Errorf("pipeline is not fully wired")
	}

	posts, err := p.source.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	feed.SortPosts(posts)
	if p.limit > 0 && len(posts) > p.limit {
		posts = posts[:p.limit]
	}

	assembled := feed.NewFeed(p.meta)
	for _, post := range posts {
		item, err := p.builder.Build(post)
		if err != nil {
			return fmt.Errorf("build item %s: %w", post.Slug, err)
		}
		feed.AddItem(assembled, item)
	}

	if err := p.emitter.Write(assembled, p.meta); err != nil {
		return fmt.Errorf("write feeds: %w", err)
	}

	p.debug("feeds generated", "items", len(assembled.Items))

	if p.pinger == nil {
		return nil
	}

	urls := []string{p.meta.FeedURLs.RSS, p.meta.FeedURLs.Atom, p.meta.FeedURLs.JSON}
	if err := p.pinger.Ping(ctx, urls); err != nil {
		return fmt.Errorf("ping hub: %w", err)
	}

	return nil
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

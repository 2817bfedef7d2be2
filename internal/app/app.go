package app

import (
	"context"
	"log/slog"

	"github.com/underoot/maksugr.com/internal/config"
	"github.com/underoot/maksugr.com/internal/content"
	"github.com/underoot/maksugr.com/internal/domain"
	"github.com/underoot/maksugr.com/internal/feed"
	"github.com/underoot/maksugr.com/internal/infrastructure/scheduler"
	"github.com/underoot/maksugr.com/internal/infrastructure/websub"
	"github.com/underoot/maksugr.com/internal/logging"
	"github.com/underoot/maksugr.com/internal/ports"
	"github.com/underoot/maksugr.com/internal/usecase"
)

const generatorLabel = "feedgen (github.com/underoot/maksugr.com)"

// Application wires configuration into the feed pipeline and its
// optional watch loop.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	watcher  *usecase.Watcher
}

// New builds a runnable application instance from configuration.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	source := content.NewLoader(cfg.Content.Dir, baseLogger.With("component", "loader"))
	renderer := content.NewRenderer()
	builder := feed.NewItemBuilder(renderer, cfg.Site.BaseURL, cfg.Content.Section)
	emitter := feed.NewEmitter(feed.DefaultRegistry(), cfg.FeedsPath(), baseLogger.With("component", "emitter"))

	var pinger ports.Pinger
	if cfg.Ping.HubURL != "" {
		pinger = websub.NewPinger(cfg.Ping.HubURL)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:  source,
		Builder: builder,
		Emitter: emitter,
		Meta:    feedMeta(cfg),
		Limit:   cfg.Content.Limit,
		Pinger:  pinger,
		Logger:  baseLogger.With("component", "pipeline"),
	})

	application := &Application{cfg: cfg, pipeline: pipeline}
	if cfg.Scheduler.Enabled {
		driver := scheduler.NewTickerScheduler(cfg.Scheduler.IntervalDuration())
		application.watcher = usecase.NewWatcher(driver, pipeline, baseLogger.With("component", "watcher"))
	}

	return application
}

// Run executes one build, or keeps rebuilding until cancellation when
// watch mode is enabled.
func (a *Application) Run(ctx context.Context) error {
	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return a.watcher.Stop(context.Background())
	}

	return a.pipeline.GenerateMainFeeds(ctx)
}

// feedMeta folds site configuration into channel metadata, including
// the absolute URLs of all three emitted documents.
func feedMeta(cfg config.Config) domain.FeedMeta {
	base := cfg.Site.BaseURL
	feedsBase := base + "/" + cfg.Output.FeedsDir

	return domain.FeedMeta{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		SiteURL:     base,
		Language:    cfg.Site.Language,
		Image:       cfg.Site.Image,
		Favicon:     cfg.Site.Favicon,
		Copyright:   cfg.Site.Copyright,
		Generator:   generatorLabel,
		Author: domain.Author{
			Name:  cfg.Site.Author.Name,
			Email: cfg.Site.Author.Email,
			Link:  cfg.Site.Author.Link,
		},
		FeedURLs: domain.FeedURLs{
			RSS:  feedsBase + "/" + feed.RSSFilename,
			Atom: feedsBase + "/" + feed.AtomFilename,
			JSON: feedsBase + "/" + feed.JSONFilename,
		},
	}
}

package ports

import (
	"context"
	"time"

	"github.com/underoot/maksugr.com/internal/domain"
)

// PostSource loads every publishable post from the content store.
type PostSource interface {
	LoadAll(ctx context.Context) ([]domain.Post, error)
}

// Renderer turns a post body into a markup string using the site's
// fixed set of rendering components.
type Renderer interface {
	Render(post domain.Post) (string, error)
}

// Pinger announces freshly written feed documents to an external hub.
type Pinger interface {
	Ping(ctx context.Context, feedURLs []string) error
}

// Scheduler controls when rebuilds execute in watch mode.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}

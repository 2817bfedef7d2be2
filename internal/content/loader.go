package content

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	slugpkg "github.com/goliatone/go-slug"

	"github.com/underoot/maksugr.com/internal/domain"
	"github.com/underoot/maksugr.com/internal/ports"
)

// frontMatter mirrors the YAML block preceding each note's body.
type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Date    string `yaml:"date"`
	Slug    string `yaml:"slug"`
	Draft   bool   `yaml:"draft"`
}

// Loader reads authored notes from a content directory.
type Loader struct {
	dir    string
	logger *slog.Logger
}

var _ ports.PostSource = (*Loader)(nil)

// NewLoader wires the content directory root.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// LoadAll walks the content directory and parses every markdown file.
// Drafts are skipped; any malformed file aborts the whole load.
func (l *Loader) LoadAll(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	seen := map[string]string{}

	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}

		post, err := l.loadFile(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		if post.Draft {
			l.debug("skip draft", "path", path)
			return nil
		}
		if prev, ok := seen[post.Slug]; ok {
			return fmt.Errorf("duplicate slug %q in %s and %s", post.Slug, prev, path)
		}
		seen[post.Slug] = path

		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.debug("content loaded", "dir", l.dir, "posts", len(posts))
	return posts, nil
}

func (l *Loader) loadFile(path string) (domain.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Post{}, fmt.Errorf("read file: %w", err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return domain.Post{}, fmt.Errorf("parse front matter: %w", err)
	}

	if fm.Title == "" {
		return domain.Post{}, fmt.Errorf("missing title")
	}

	publishedAt, err := parseDate(fm.Date)
	if err != nil {
		return domain.Post{}, err
	}

	postSlug, err := resolveSlug(fm, path)
	if err != nil {
		return domain.Post{}, err
	}

	return domain.Post{
		Slug:        postSlug,
		Title:       fm.Title,
		Summary:     fm.Summary,
		PublishedAt: publishedAt,
		Draft:       fm.Draft,
		Body:        body,
	}, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}

// parseDate accepts date-only and full RFC 3339 values; time-of-day
// carries no meaning for a note, so everything truncates to the
// calendar date in UTC.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}

	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// resolveSlug prefers the front-matter slug, then the file name, then
// the title. Whatever wins is normalized to URL-safe form.
func resolveSlug(fm frontMatter, path string) (string, error) {
	candidate := fm.Slug
	if candidate == "" {
		base := filepath.Base(path)
		candidate = strings.TrimSuffix(base, filepath.Ext(base))
	}

	normalized, err := slugpkg.Normalize(candidate)
	if err != nil || normalized == "" {
		normalized, err = slugpkg.Normalize(fm.Title)
		if err != nil {
			return "", fmt.Errorf("cannot derive slug: %w", err)
		}
	}
	if normalized == "" {
		return "", fmt.Errorf("cannot derive slug from %q", candidate)
	}

	return normalized, nil
}

func (l *Loader) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

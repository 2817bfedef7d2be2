package feed

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/underoot/maksugr.com/internal/domain"
)

// stubRenderer returns a fixed markup string, or fails on demand.
type stubRenderer struct {
	markup string
	err    error
}

func (s stubRenderer) Render(domain.Post) (string, error) {
	return s.markup, s.err
}

func TestItemBuilderBuild(t *testing.T) {
	t.Parallel()

	post := domain.Post{
		Slug:        "hello-world",
		Title:       "Hello",
		Summary:     "Hi",
		PublishedAt: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	builder := NewItemBuilder(
		stubRenderer{markup: `<p>See <a href="/#about">about</a></p>`},
		testBaseURL,
		"notes",
	)

	item, err := builder.Build(post)
	require.NoError(t, err)

	wantURL := testBaseURL + "/notes/hello-world"
	assert.Equal(t, wantURL, item.Id)
	assert.Equal(t, wantURL, item.Link.Href)
	assert.Equal(t, item.Id, item.Link.Href)
	assert.Equal(t, "Hello", item.Title)
	assert.Equal(t, "Hi", item.Description)
	assert.Equal(t, post.PublishedAt, item.Created)
	assert.Equal(t,
		`<p>See <a href="https://www.maksugr.com/notes/hello-world#about">about</a></p>`,
		strings.TrimSpace(item.Content))
}

func TestItemBuilderSanitizesContent(t *testing.T) {
	t.Parallel()

	builder := NewItemBuilder(
		stubRenderer{markup: `<p>keep</p><script>alert(1)</script>`},
		testBaseURL,
		"notes",
	)

	item, err := builder.Build(domain.Post{Slug: "s", Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, `<p>keep</p>`, item.Content)
}

func TestItemBuilderPropagatesRenderError(t *testing.T) {
	t.Parallel()

	builder := NewItemBuilder(stubRenderer{err: fmt.Errorf("broken body")}, testBaseURL, "notes")

	_, err := builder.Build(domain.Post{Slug: "bad", Title: "Bad"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken body")
}

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	builder := NewItemBuilder(stubRenderer{}, testBaseURL, "notes")
	got := builder.CanonicalURL(domain.Post{Slug: "some-note"})
	assert.Equal(t, "https://www.maksugr.com/notes/some-note", got)
}

package feed

import (
	"fmt"

	"github.com/gorilla/feeds"

	"github.com/underoot/maksugr.com/internal/domain"
)

// Format serializes an assembled feed into one syndication document.
type Format interface {
	Name() string
	Filename() string
	Encode(f *feeds.Feed, meta domain.FeedMeta) (string, error)
}

// Registry keeps a mapping from format names to their serializers,
// preserving registration order for stable emission.
type Registry struct {
	formats map[string]Format
	order   []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: map[string]Format{}}
}

// Register adds or replaces a format implementation.
func (r *Registry) Register(format Format) {
	if r.formats == nil {
		r.formats = map[string]Format{}
	}
	if _, ok := r.formats[format.Name()]; !ok {
		r.order = append(r.order, format.Name())
	}
	r.formats[format.Name()] = format
}

// Resolve returns a format by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Format, error) {
	if format, ok := r.formats[name]; ok {
		return format, nil
	}
	return nil, fmt.Errorf("feed format %s is not registered", name)
}

// All returns every registered format in registration order.
func (r *Registry) All() []Format {
	result := make([]Format, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.formats[name])
	}
	return result
}

// DefaultRegistry registers the three formats the site emits.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(rssFormat{})
	r.Register(atomFormat{})
	r.Register(jsonFormat{})
	return r
}

// Package studio turns recommendation output into what the 3D studio shows:
// the grouped furniture panel, product search queries and positioned scene
// objects. Every free-form label passes through the type resolver before it
// touches the catalog.
package studio

import (
	"context"
	"sort"
	"strings"

	"roomstudio/internal/config"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/recommend"
	"roomstudio/pkg/strategy"
)

// MaxProductQueries caps the number of product searches per room.
const MaxProductQueries = 6

// DefaultStyle is used for product searches when the room has no style.
const DefaultStyle = "modern"

// Resolver maps a free-form label to a catalog key. Both resolver.TypeResolver
// and resolver.Cached satisfy it.
type Resolver interface {
	Lookup(raw string) (string, bool)
}

// OverrideSource supplies remote display overrides. config.RemoteManager
// satisfies it.
type OverrideSource interface {
	ModelOverrides() map[string]config.ModelOverride
}

// Service assembles studio views. It is safe for concurrent use.
type Service struct {
	cat       *catalog.Catalog
	res       Resolver
	overrides OverrideSource
	suggester strategy.Suggester
	sources   []recommend.Source
	timeoutMs int
}

type Option func(*Service)

// WithOverrides layers remote display metadata over the catalog defaults.
func WithOverrides(o OverrideSource) Option {
	return func(s *Service) { s.overrides = o }
}

// WithSuggester replaces the static room defaults.
func WithSuggester(sg strategy.Suggester) Option {
	return func(s *Service) {
		if sg != nil {
			s.suggester = sg
		}
	}
}

// WithSources sets the recommendation sources consulted when a request
// carries no analysis.
func WithSources(timeoutMs int, sources ...recommend.Source) Option {
	return func(s *Service) {
		s.timeoutMs = timeoutMs
		s.sources = sources
	}
}

func New(cat *catalog.Catalog, res Resolver, opts ...Option) *Service {
	s := &Service{
		cat:       cat,
		res:       res,
		suggester: strategy.NewRoomDefaultsSuggester(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze gathers and merges an analysis from every configured source. It
// returns nil when no source produced anything.
func (s *Service) Analyze(ctx context.Context, room recommend.RoomContext) *recommend.Analysis {
	if len(s.sources) == 0 {
		return nil
	}
	return recommend.Merge(recommend.GatherAll(ctx, room, s.timeoutMs, s.sources))
}

// Model is the display record for one furniture kind.
type Model struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Models returns the catalog entries overlaid with remote overrides. Catalog
// kinds come first in catalog order, then override-only keys sorted.
func (s *Service) Models() []Model {
	models, order := s.modelData()
	out := make([]Model, 0, len(order))
	for _, k := range order {
		out = append(out, models[k])
	}
	return out
}

func (s *Service) modelData() (map[string]Model, []string) {
	keys := s.cat.KeyStrings()
	entries := s.cat.Entries()
	models := make(map[string]Model, len(keys))
	for _, k := range keys {
		e := entries[k]
		models[k] = Model{Key: k, Name: e.Name, Color: e.Color, Description: e.Description, Icon: s.cat.Icon(k)}
	}
	if s.overrides == nil {
		return models, keys
	}

	var extra []string
	for k, o := range s.overrides.ModelOverrides() {
		m, ok := models[k]
		if !ok {
			m = Model{Key: k, Color: catalog.DefaultAccent, Icon: catalog.FallbackIcon}
			extra = append(extra, k)
		}
		if o.Name != "" {
			m.Name = o.Name
		}
		if o.Color != "" {
			m.Color = o.Color
		}
		if o.Description != "" {
			m.Description = o.Description
		}
		models[k] = m
	}
	sort.Strings(extra)
	return models, append(keys, extra...)
}

// displayName falls back to the key with underscores as spaces.
func displayName(m Model) string {
	if m.Name != "" {
		return m.Name
	}
	return strings.ReplaceAll(m.Key, "_", " ")
}

package studio

import (
	"context"
	"strings"

	"roomstudio/pkg/catalog"
	"roomstudio/pkg/recommend"
)

// SourceDefaults marks a list built from suggester defaults.
const SourceDefaults = "defaults"

// ListRequest asks for the furniture panel of a room. A nil Analysis makes
// the service consult its recommendation sources.
type ListRequest struct {
	Room     recommend.RoomContext `json:"room"`
	Analysis *recommend.Analysis   `json:"analysis,omitempty"`
}

// Item is one row of the furniture panel.
type Item struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Recommended bool   `json:"recommended"`
	Known       bool   `json:"known"`
	Where       string `json:"where,omitempty"`
	ColorLogic  string `json:"color_logic,omitempty"`
	Why         string `json:"why,omitempty"`
}

// FurnitureList groups every placeable model for the studio panel.
type FurnitureList struct {
	Source      string   `json:"source"`
	Summary     string   `json:"summary,omitempty"`
	ColorScheme []string `json:"color_scheme,omitempty"`
	Recommended []Item   `json:"recommended"`
	Suggested   []Item   `json:"suggested"`
	All         []Item   `json:"all"`
}

// FurnitureList builds the three panel groups:
//   - recommended: items with placement advice, in first-seen order; a later
//     advice for the same key replaces the earlier one
//   - suggested: recommended labels without advice, or suggester defaults
//     when the analysis names nothing at all
//   - all: every remaining model
func (s *Service) FurnitureList(ctx context.Context, req ListRequest) *FurnitureList {
	a := req.Analysis
	if a == nil {
		a = s.Analyze(ctx, req.Room)
	}
	if a == nil {
		a = &recommend.Analysis{}
	}

	var adviceOrder []string
	advice := make(map[string]recommend.Placement)
	for _, p := range a.DetailedPlacements {
		if p.Item == "" {
			continue
		}
		key, _ := s.res.Lookup(p.Item)
		if _, seen := advice[key]; !seen {
			adviceOrder = append(adviceOrder, key)
		}
		advice[key] = p
	}

	var recs []string
	for _, label := range a.RecommendedFurniture {
		if key, _ := s.res.Lookup(label); key != "" {
			recs = append(recs, key)
		}
	}

	out := &FurnitureList{
		Source:      a.Source,
		Summary:     a.Summary,
		ColorScheme: a.ColorScheme,
		Recommended: []Item{},
		Suggested:   []Item{},
		All:         []Item{},
	}
	if len(recs) == 0 && len(advice) == 0 {
		for _, label := range s.suggester.Suggest(req.Room) {
			if key, _ := s.res.Lookup(label); key != "" {
				recs = append(recs, key)
			}
		}
		out.Source = SourceDefaults
	}

	models, order := s.modelData()
	processed := make(map[string]bool, len(order))

	for _, key := range adviceOrder {
		adv := advice[key]
		m, known := models[key]
		if !known {
			m = Model{Key: key, Name: adv.Item, Color: catalog.DefaultAccent}
		}
		it := s.item(m, known, true)
		if adv.Color != "" {
			it.Color = adv.Color
		}
		if adv.Description != "" {
			it.Description = adv.Description
		}
		it.Where, it.ColorLogic, it.Why = adv.Where, adv.ColorLogic, adv.Why
		out.Recommended = append(out.Recommended, it)
		processed[key] = true
	}

	for _, key := range recs {
		if processed[key] {
			continue
		}
		m, known := models[key]
		if !known {
			m = Model{Key: key, Name: key, Color: catalog.DefaultAccent}
		}
		out.Suggested = append(out.Suggested, s.item(m, known, true))
		processed[key] = true
	}

	for _, key := range order {
		if !processed[key] {
			out.All = append(out.All, s.item(models[key], true, false))
		}
	}
	return out
}

func (s *Service) item(m Model, known, recommended bool) Item {
	icon := m.Icon
	if icon == "" {
		icon = s.cat.Icon(m.Key)
	}
	return Item{
		Key:         m.Key,
		Name:        displayName(m),
		Color:       m.Color,
		Description: m.Description,
		Icon:        icon,
		Recommended: recommended,
		Known:       known,
	}
}

// ProductQueries is the set of product searches for a room.
type ProductQueries struct {
	Style   string   `json:"style"`
	Queries []string `json:"queries"`
}

// ProductQueries derives up to MaxProductQueries search queries: advice items
// first, then recommended labels with underscores as spaces, skipping
// case-insensitive repeats. Rooms with neither get the product defaults.
func (s *Service) ProductQueries(a *recommend.Analysis, room recommend.RoomContext) *ProductQueries {
	var items []string
	seen := make(map[string]bool)
	if !a.Empty() {
		for _, p := range a.DetailedPlacements {
			if p.Item != "" {
				items = append(items, p.Item)
				seen[strings.ToLower(p.Item)] = true
			}
		}
		for _, r := range a.RecommendedFurniture {
			name := strings.ReplaceAll(r, "_", " ")
			if lower := strings.ToLower(name); !seen[lower] {
				items = append(items, name)
				seen[lower] = true
			}
		}
	}
	if len(items) == 0 {
		items = catalog.ProductDefaults(room.RoomType)
	}
	if len(items) > MaxProductQueries {
		items = items[:MaxProductQueries]
	}

	style := room.Style
	if style == "" {
		style = DefaultStyle
	}
	return &ProductQueries{Style: style, Queries: items}
}

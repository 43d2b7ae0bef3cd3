package recommend

import (
	"context"
)

// RoomContext describes the room a recommendation is requested for.
type RoomContext struct {
	RoomType string   `json:"room_type"`
	Style    string   `json:"style"`
	Objects  []string `json:"objects,omitempty"`
}

// Placement is one item of placement advice. Item is a free-form label.
type Placement struct {
	Item        string `json:"item"`
	Where       string `json:"where,omitempty"`
	Color       string `json:"color,omitempty"`
	ColorLogic  string `json:"color_logic,omitempty"`
	Why         string `json:"why,omitempty"`
	Description string `json:"description,omitempty"`
}

// Analysis is what a recommendation source returns for a room. Labels are
// not validated against the catalog.
type Analysis struct {
	Source               string      `json:"source,omitempty"`
	RoomType             string      `json:"room_type,omitempty"`
	Style                string      `json:"style,omitempty"`
	RecommendedFurniture []string    `json:"recommended_furniture"`
	DetailedPlacements   []Placement `json:"detailed_placements"`
	ColorScheme          []string    `json:"color_scheme,omitempty"`
	Summary              string      `json:"summary,omitempty"`
}

// Empty reports whether a carries no furniture at all.
func (a *Analysis) Empty() bool {
	return a == nil || (len(a.RecommendedFurniture) == 0 && len(a.DetailedPlacements) == 0)
}

// Source produces furniture recommendations for a room.
type Source interface {
	// Name returns the unique identifier of the source
	Name() string
	// Recommend analyses the room. Implementations must honour ctx.
	Recommend(ctx context.Context, room RoomContext) (*Analysis, error)
}

package strategy

import (
	"roomstudio/internal/config"
	"roomstudio/pkg/recommend"
)

// Suggester picks default furniture for a room when no recommendation source
// produced anything.
type Suggester interface {
	// Name returns the unique identifier for the strategy
	Name() string
	// Suggest returns raw furniture labels for the room. It never returns nil.
	Suggest(room recommend.RoomContext) []string
}

// NewSuggester initializes a suggester based on the configuration. Unknown or
// empty types fall back to the static room defaults.
func NewSuggester(cfg config.SuggestionConfig) Suggester {
	switch cfg.Type {
	case "dynamic_expression":
		return NewExpressionSuggester(cfg)
	default:
		return NewRoomDefaultsSuggester()
	}
}

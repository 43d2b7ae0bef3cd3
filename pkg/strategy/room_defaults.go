package strategy

import (
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/recommend"
)

// RoomDefaultsSuggester returns the built-in per-room furniture set.
type RoomDefaultsSuggester struct{}

func NewRoomDefaultsSuggester() *RoomDefaultsSuggester {
	return &RoomDefaultsSuggester{}
}

func (s *RoomDefaultsSuggester) Name() string {
	return "room_defaults"
}

func (s *RoomDefaultsSuggester) Suggest(room recommend.RoomContext) []string {
	return catalog.RoomDefaults(room.RoomType)
}

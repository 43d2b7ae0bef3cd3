package studio

import (
	"roomstudio/pkg/catalog"
)

// Placement is a saved furniture position in a room.
type Placement struct {
	ModelName string  `json:"model_name"`
	Color     string  `json:"color,omitempty"`
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`
	PositionZ float64 `json:"position_z"`
	Rotation  float64 `json:"rotation,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
}

// SceneObject is a placement resolved to a catalog model.
type SceneObject struct {
	Key   string        `json:"key"`
	Known bool          `json:"known"`
	Color string        `json:"color"`
	Node  *catalog.Node `json:"node"`
}

// Scene resolves each placement's model name and builds its positioned node.
// Unknown names get a generic box; a missing or invalid color uses
// catalog.DefaultAccent and a zero scale means 1.
func (s *Service) Scene(placements []Placement) []SceneObject {
	out := make([]SceneObject, 0, len(placements))
	for _, p := range placements {
		key, known := s.res.Lookup(p.ModelName)
		color := p.Color
		if _, err := catalog.ParseColor(color); err != nil {
			color = catalog.DefaultAccent
		}
		scale := p.Scale
		if scale == 0 {
			scale = 1
		}

		n := s.cat.Build(key, color)
		n.Position = catalog.Vec3{X: p.PositionX, Y: p.PositionY, Z: p.PositionZ}
		n.Rotation = p.Rotation
		n.Scale = scale
		out = append(out, SceneObject{Key: key, Known: known, Color: color, Node: n})
	}
	return out
}

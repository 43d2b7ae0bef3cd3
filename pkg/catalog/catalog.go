// Package catalog holds the closed set of furniture kinds the studio can
// render, together with their display metadata, icons, alias vocabulary and
// parametric geometry.
//
// The kinds table below is the single source of truth for the key set:
// metadata, icons, geometry providers and alias validation are all derived
// from it, so adding a kind means adding one row.
package catalog

import (
	"sync"
)

// Key is a canonical furniture type identifier.
type Key string

const (
	Sofa        Key = "sofa"
	Table       Key = "table"
	Chair       Key = "chair"
	Bed         Key = "bed"
	Wardrobe    Key = "wardrobe"
	Bookshelf   Key = "bookshelf"
	Lamp        Key = "lamp"
	Desk        Key = "desk"
	Rug         Key = "rug"
	TVStand     Key = "tv_stand"
	DiningTable Key = "dining_table"
	SideTable   Key = "side_table"
	Plant       Key = "plant"
	Mirror      Key = "mirror"
)

// DefaultAccent is the accent used when neither the caller nor the catalog
// supplies a color.
const DefaultAccent = "#8b5cf6"

// FallbackIcon is shown for keys without a registered icon.
const FallbackIcon = "📦"

// Entry is the default display record of a kind.
type Entry struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type kind struct {
	key   Key
	entry Entry
	icon  string
	build func(accent Color) *Node
}

var kinds = []kind{
	{Sofa, Entry{"Sofa", "#6366f1", "Three-seater sofa"}, "🛋️", buildSofa},
	{Table, Entry{"Coffee Table", "#92400e", "Modern coffee table"}, "☕", buildTable},
	{Chair, Entry{"Chair", "#7c3aed", "Dining chair"}, "🪑", buildChair},
	{Bed, Entry{"Bed", "#1e40af", "Queen-size bed"}, "🛏️", buildBed},
	{Wardrobe, Entry{"Wardrobe", "#78350f", "Two-door wardrobe"}, "🚪", buildWardrobe},
	{Bookshelf, Entry{"Bookshelf", "#92400e", "Five-tier bookshelf"}, "📚", buildBookshelf},
	{Lamp, Entry{"Floor Lamp", "#f59e0b", "Modern floor lamp"}, "💡", buildLamp},
	{Desk, Entry{"Study Desk", "#78350f", "Work desk"}, "🖥️", buildDesk},
	{Rug, Entry{"Area Rug", "#6b7280", "Decorative rug"}, "🟪", buildRug},
	{TVStand, Entry{"TV Stand", "#1f2937", "Entertainment unit"}, "📺", buildTVStand},
	{DiningTable, Entry{"Dining Table", "#78350f", "Six-seater table"}, "🍽️", buildDiningTable},
	{SideTable, Entry{"Side Table", "#6b7280", "Bedside table"}, "🪵", buildSideTable},
	{Plant, Entry{"Indoor Plant", "#15803d", "Decorative plant"}, "🌿", buildPlant},
	{Mirror, Entry{"Mirror", "#475569", "Full-length mirror"}, "🪞", buildMirror},
}

// Catalog is an immutable view over the kinds table. It is safe for
// concurrent use.
type Catalog struct {
	order []Key
	byKey map[Key]kind
	geo   map[Key]GeometryProvider
}

var builtin = sync.OnceValue(func() *Catalog {
	c := &Catalog{
		order: make([]Key, 0, len(kinds)),
		byKey: make(map[Key]kind, len(kinds)),
		geo:   make(map[Key]GeometryProvider, len(kinds)),
	}
	for _, k := range kinds {
		c.order = append(c.order, k.key)
		c.byKey[k.key] = k
		c.geo[k.key] = provider{key: k.key, build: k.build}
	}
	return c
})

// Default returns the process-wide catalog.
func Default() *Catalog { return builtin() }

// Has reports whether key is a canonical catalog key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[Key(key)]
	return ok
}

// KeyStrings returns the canonical keys in catalog order.
func (c *Catalog) KeyStrings() []string {
	out := make([]string, len(c.order))
	for i, k := range c.order {
		out[i] = string(k)
	}
	return out
}

// Entry returns the default display record for key.
func (c *Catalog) Entry(key string) (Entry, bool) {
	k, ok := c.byKey[Key(key)]
	return k.entry, ok
}

// Entries returns every default display record keyed by catalog key.
func (c *Catalog) Entries() map[string]Entry {
	out := make(map[string]Entry, len(c.order))
	for _, k := range c.order {
		out[string(k)] = c.byKey[k].entry
	}
	return out
}

// Icon returns the icon for key, or FallbackIcon.
func (c *Catalog) Icon(key string) string {
	if k, ok := c.byKey[Key(key)]; ok {
		return k.icon
	}
	return FallbackIcon
}

// Geometry returns the geometry provider registered for key.
func (c *Catalog) Geometry(key string) (GeometryProvider, bool) {
	g, ok := c.geo[Key(key)]
	return g, ok
}

// Build constructs the scene node for key tinted with accent. Keys without a
// provider get a generic box so callers always have something to place.
func (c *Catalog) Build(key, accent string) *Node {
	col, err := ParseColor(accent)
	if err != nil {
		col, _ = ParseColor(DefaultAccent)
	}
	var n *Node
	if g, ok := c.Geometry(key); ok {
		n = g.Build(col)
	} else {
		n = buildGenericBox(col)
	}
	n.Name = key
	return n
}

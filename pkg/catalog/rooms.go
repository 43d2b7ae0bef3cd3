package catalog

// DefaultRoom is used for unknown room types.
const DefaultRoom = "living_room"

var roomDefaults = map[string][]Key{
	"living_room": {Sofa, Table, TVStand, Lamp, Rug, Plant},
	"bedroom":     {Bed, Wardrobe, SideTable, Lamp, Mirror},
	"kitchen":     {DiningTable, Chair, Lamp},
	"dining_room": {DiningTable, Chair, Lamp, Rug, Mirror},
	"office":      {Desk, Chair, Bookshelf, Lamp, Plant},
	"bathroom":    {Mirror, Plant, Lamp},
}

// productDefaults are free-text search queries, not keys.
var productDefaults = map[string][]string{
	"living_room": {"sofa", "coffee table", "floor lamp"},
	"bedroom":     {"bed", "wardrobe", "side table"},
	"kitchen":     {"dining table", "chair"},
	"office":      {"desk", "chair", "bookshelf"},
}

var productFallback = []string{"sofa", "table", "lamp"}

// RoomDefaults returns the furniture suggested for a room type when no
// recommendation is available. Unknown room types get the living room set.
func RoomDefaults(roomType string) []string {
	keys, ok := roomDefaults[roomType]
	if !ok {
		keys = roomDefaults[DefaultRoom]
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

// ProductDefaults returns the product search queries used when a room has
// no recommended items.
func ProductDefaults(roomType string) []string {
	q, ok := productDefaults[roomType]
	if !ok {
		q = productFallback
	}
	return append([]string(nil), q...)
}

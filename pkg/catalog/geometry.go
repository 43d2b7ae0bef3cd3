package catalog

// Shape names a primitive in the scene-graph description.
type Shape string

const (
	ShapeGroup      Shape = "group"
	ShapeBox        Shape = "box"
	ShapeCylinder   Shape = "cylinder"
	ShapeCone       Shape = "cone"
	ShapeSphere     Shape = "sphere"
	ShapePointLight Shape = "point_light"
)

// Vec3 is a position in metres, y up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Material describes a phong surface.
type Material struct {
	Color             Color   `json:"color"`
	Emissive          *Color  `json:"emissive,omitempty"`
	EmissiveIntensity float64 `json:"emissive_intensity,omitempty"`
	Shininess         float64 `json:"shininess,omitempty"`
	DoubleSided       bool    `json:"double_sided,omitempty"`
}

// Light describes a point light.
type Light struct {
	Color     Color   `json:"color"`
	Intensity float64 `json:"intensity"`
	Distance  float64 `json:"distance"`
}

// Node is one element of a parametric furniture model. Dims are shape
// specific: box (w, h, d), cylinder (rTop, rBottom, h, segments), cone
// (r, h, segments), sphere (r, segments).
type Node struct {
	Name     string    `json:"name,omitempty"`
	Shape    Shape     `json:"shape"`
	Dims     []float64 `json:"dims,omitempty"`
	Position Vec3      `json:"position"`
	Rotation float64   `json:"rotation_y,omitempty"`
	Scale    float64   `json:"scale,omitempty"`
	Material *Material `json:"material,omitempty"`
	Light    *Light    `json:"light,omitempty"`
	Children []*Node   `json:"children,omitempty"`
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// GeometryProvider builds the parametric model of one catalog kind.
type GeometryProvider interface {
	Key() Key
	Build(accent Color) *Node
}

type provider struct {
	key   Key
	build func(accent Color) *Node
}

func (p provider) Key() Key                 { return p.key }
func (p provider) Build(accent Color) *Node { return p.build(accent) }

func group() *Node { return &Node{Shape: ShapeGroup} }

func phong(c Color) *Material { return &Material{Color: c} }

func box(w, h, d float64, m *Material, at Vec3) *Node {
	return &Node{Shape: ShapeBox, Dims: []float64{w, h, d}, Material: m, Position: at}
}

func cylinder(rTop, rBottom, h float64, seg int, m *Material, at Vec3) *Node {
	return &Node{Shape: ShapeCylinder, Dims: []float64{rTop, rBottom, h, float64(seg)}, Material: m, Position: at}
}

func buildGenericBox(c Color) *Node {
	return group().Add(box(0.6, 0.6, 0.6, phong(c), Vec3{Y: 0.3}))
}

func buildSofa(c Color) *Node {
	g := group().Add(
		box(2, 0.35, 0.9, phong(c), Vec3{Y: 0.175}),
		box(2, 0.45, 0.15, phong(c.Darken(0.8)), Vec3{Y: 0.525, Z: -0.375}),
	)
	for _, x := range []float64{-0.925, 0.925} {
		g.Add(box(0.15, 0.35, 0.9, phong(c.Darken(0.85)), Vec3{X: x, Y: 0.35}))
	}
	return g
}

func buildTable(c Color) *Node {
	g := group().Add(box(1.2, 0.05, 0.6, phong(c), Vec3{Y: 0.45}))
	for _, p := range [][2]float64{{-0.5, -0.22}, {0.5, -0.22}, {-0.5, 0.22}, {0.5, 0.22}} {
		g.Add(cylinder(0.03, 0.03, 0.45, 8, phong(c.Darken(0.7)), Vec3{X: p[0], Y: 0.225, Z: p[1]}))
	}
	return g
}

func buildChair(c Color) *Node {
	g := group().Add(box(0.45, 0.04, 0.45, phong(c), Vec3{Y: 0.45}))
	for _, p := range [][2]float64{{-0.18, -0.18}, {0.18, -0.18}, {-0.18, 0.18}, {0.18, 0.18}} {
		g.Add(cylinder(0.02, 0.02, 0.45, 6, phong(c.Darken(0.6)), Vec3{X: p[0], Y: 0.225, Z: p[1]}))
	}
	return g.Add(box(0.45, 0.45, 0.04, phong(c.Darken(0.85)), Vec3{Y: 0.695, Z: -0.205}))
}

func buildBed(c Color) *Node {
	return group().Add(
		box(1.8, 0.25, 2, phong(c), Vec3{Y: 0.325}),
		box(1.9, 0.2, 2.1, phong(c.Darken(0.6)), Vec3{Y: 0.1}),
		box(1.9, 0.6, 0.08, phong(c.Darken(0.5)), Vec3{Y: 0.5, Z: -1}),
		box(0.5, 0.1, 0.3, phong(0xf0f0f0), Vec3{Y: 0.5, Z: -0.7}),
	)
}

func buildWardrobe(c Color) *Node {
	g := group().Add(box(1.5, 2, 0.6, phong(c), Vec3{Y: 1}))
	for _, x := range []float64{-0.08, 0.08} {
		g.Add(cylinder(0.015, 0.015, 0.12, 8, phong(0xcccccc), Vec3{X: x, Y: 1, Z: 0.31}))
	}
	return g
}

func buildBookshelf(c Color) *Node {
	g := group()
	for _, x := range []float64{-0.38, 0.38} {
		g.Add(box(0.04, 1.8, 0.3, phong(c), Vec3{X: x, Y: 0.9}))
	}
	for i := 0; i < 5; i++ {
		g.Add(box(0.8, 0.03, 0.3, phong(c.Darken(0.9)), Vec3{Y: 0.05 + float64(i)*0.43}))
	}
	return g
}

func buildLamp(c Color) *Node {
	emissive := c
	shade := &Node{
		Shape:    ShapeCone,
		Dims:     []float64{0.2, 0.3, 16},
		Position: Vec3{Y: 1.35},
		Material: &Material{Color: c, Emissive: &emissive, EmissiveIntensity: 0.3, DoubleSided: true},
	}
	glow := &Node{
		Shape:    ShapePointLight,
		Position: Vec3{Y: 1.3},
		Light:    &Light{Color: c, Intensity: 0.6, Distance: 4},
	}
	return group().Add(
		cylinder(0.15, 0.18, 0.05, 16, phong(0x333333), Vec3{Y: 0.025}),
		cylinder(0.02, 0.02, 1.2, 8, phong(0x666666), Vec3{Y: 0.65}),
		shade,
		glow,
	)
}

func buildDesk(c Color) *Node {
	g := group().Add(box(1.2, 0.04, 0.6, phong(c), Vec3{Y: 0.75}))
	for _, p := range [][2]float64{{-0.55, -0.25}, {0.55, -0.25}, {-0.55, 0.25}, {0.55, 0.25}} {
		g.Add(box(0.04, 0.75, 0.04, phong(c.Darken(0.7)), Vec3{X: p[0], Y: 0.375, Z: p[1]}))
	}
	return g
}

func buildRug(c Color) *Node {
	m := phong(c)
	m.DoubleSided = true
	return group().Add(box(2.5, 0.02, 1.5, m, Vec3{Y: 0.01}))
}

func buildTVStand(c Color) *Node {
	glow := Color(0x111133)
	return group().Add(
		box(1.5, 0.5, 0.4, phong(c), Vec3{Y: 0.25}),
		box(1.2, 0.7, 0.04, &Material{Color: 0x111111, Emissive: &glow, EmissiveIntensity: 0.3}, Vec3{Y: 0.85, Z: -0.05}),
	)
}

func buildDiningTable(c Color) *Node {
	g := group().Add(box(1.6, 0.05, 0.9, phong(c), Vec3{Y: 0.75}))
	for _, p := range [][2]float64{{-0.7, -0.35}, {0.7, -0.35}, {-0.7, 0.35}, {0.7, 0.35}} {
		g.Add(cylinder(0.035, 0.035, 0.75, 8, phong(c.Darken(0.7)), Vec3{X: p[0], Y: 0.375, Z: p[1]}))
	}
	return g
}

func buildSideTable(c Color) *Node {
	return group().Add(
		cylinder(0.2, 0.2, 0.03, 16, phong(c), Vec3{Y: 0.55}),
		cylinder(0.03, 0.04, 0.55, 8, phong(c.Darken(0.7)), Vec3{Y: 0.275}),
	)
}

// buildPlant ignores the accent; foliage is always green.
func buildPlant(Color) *Node {
	return group().Add(
		cylinder(0.15, 0.12, 0.25, 8, phong(0x8b4513), Vec3{Y: 0.125}),
		cylinder(0.02, 0.03, 0.3, 6, phong(0x654321), Vec3{Y: 0.3}),
		&Node{Shape: ShapeSphere, Dims: []float64{0.25, 12}, Material: phong(0x228b22), Position: Vec3{Y: 0.5}},
	)
}

func buildMirror(Color) *Node {
	return group().Add(
		box(0.65, 1.25, 0.06, phong(0x555555), Vec3{Y: 0.9}),
		box(0.55, 1.15, 0.02, &Material{Color: 0xe8e8ff, Shininess: 100, DoubleSided: true}, Vec3{Y: 0.9, Z: 0.035}),
	)
}

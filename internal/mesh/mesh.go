// Package mesh builds terrain, river ribbon, and lake quad geometry from
// the generated chunk fields.
//
// Grounded on internal/meshing/fluid.go's renderFluidBlock/getFluidHeight:
// four-corner height averaging feeding a per-face quad emitter. Here the
// same shape — sample four corner heights, emit a colour-blended quad — is
// generalised from axis-aligned voxel faces to continuous terrain quads and
// a river ribbon that follows a traced centreline instead of a block grid.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/P7AC1D/genesis-sub000/internal/drainage"
	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
	"github.com/P7AC1D/genesis-sub000/internal/lake"
	"github.com/P7AC1D/genesis-sub000/internal/river"
)

// Vertex is one mesh vertex: position, normal, and vertex colour.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// Mesh is a flat, non-indexed vertex stream: every three vertices form one
// triangle.
type Mesh struct {
	Vertices []Vertex
}

// IndexedMesh is a shared-vertex mesh with a triangle index buffer.
type IndexedMesh struct {
	Vertices []Vertex
	Indices  []uint32
}

var heightBands = []struct {
	t     float64
	color mgl32.Vec3
}{
	{0.0, mgl32.Vec3{0.15, 0.3, 0.55}},
	{0.25, mgl32.Vec3{0.25, 0.5, 0.2}},
	{0.55, mgl32.Vec3{0.45, 0.4, 0.25}},
	{0.8, mgl32.Vec3{0.55, 0.55, 0.55}},
	{1.0, mgl32.Vec3{0.95, 0.95, 0.97}},
}

// heightColor maps a world height, normalised to [baseHeight, baseHeight +
// heightScale], onto the global height-band colour table so colours stay
// consistent across chunk boundaries.
func heightColor(h, baseHeight, heightScale float64) mgl32.Vec3 {
	t := clamp01((h - baseHeight) / heightScale)
	for i := 1; i < len(heightBands); i++ {
		if t <= heightBands[i].t {
			lo, hi := heightBands[i-1], heightBands[i]
			span := hi.t - lo.t
			local := 0.0
			if span > 0 {
				local = (t - lo.t) / span
			}
			return lerpVec3(lo.color, hi.color, float32(local))
		}
	}
	return heightBands[len(heightBands)-1].color
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BuildTerrainFlat builds a flat-shaded terrain mesh: each quad emits its
// own six vertices, coloured and normal'd per-face so shading is crisp at
// cell boundaries.
func BuildTerrainFlat(h *heightmap.Heightmap, w int, cellSize, baseHeight, heightScale float64) *Mesh {
	m := &Mesh{}
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			p00 := corner(h, x, z, cellSize)
			p10 := corner(h, x+1, z, cellSize)
			p01 := corner(h, x, z+1, cellSize)
			p11 := corner(h, x+1, z+1, cellSize)

			emitFlatTriangle(m, p00, p01, p11, baseHeight, heightScale)
			emitFlatTriangle(m, p00, p11, p10, baseHeight, heightScale)
		}
	}
	return m
}

func corner(h *heightmap.Heightmap, x, z int, cellSize float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(float64(x) * cellSize), float32(h.At(x, z)), float32(float64(z) * cellSize)}
}

func emitFlatTriangle(m *Mesh, a, b, c mgl32.Vec3, baseHeight, heightScale float64) {
	normal := triangleNormal(a, b, c)
	centroidHeight := float64(a[1]+b[1]+c[1]) / 3
	color := heightColor(centroidHeight, baseHeight, heightScale)

	m.Vertices = append(m.Vertices,
		Vertex{Position: a, Normal: normal, Color: color},
		Vertex{Position: b, Normal: normal, Color: color},
		Vertex{Position: c, Normal: normal, Color: color},
	)
}

func triangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	n := e1.Cross(e2)
	if n.Len() < 1e-9 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

// BuildTerrainSmooth builds a smooth-shaded terrain mesh: one vertex per
// grid point with an accumulated, area-weighted normal, indexed by the
// same two triangles per quad as the flat variant.
func BuildTerrainSmooth(h *heightmap.Heightmap, w int, cellSize, baseHeight, heightScale float64) *IndexedMesh {
	side := w + 1
	m := &IndexedMesh{
		Vertices: make([]Vertex, side*side),
	}

	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			pos := corner(h, x, z, cellSize)
			m.Vertices[z*side+x] = Vertex{
				Position: pos,
				Color:    heightColor(float64(pos[1]), baseHeight, heightScale),
			}
		}
	}

	accum := make([]mgl32.Vec3, side*side)
	addQuad := func(ia, ib, ic int) {
		a, b, c := m.Vertices[ia].Position, m.Vertices[ib].Position, m.Vertices[ic].Position
		n := triangleNormal(a, b, c)
		accum[ia] = accum[ia].Add(n)
		accum[ib] = accum[ib].Add(n)
		accum[ic] = accum[ic].Add(n)
	}

	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i00 := z*side + x
			i10 := z*side + x + 1
			i01 := (z+1)*side + x
			i11 := (z+1)*side + x + 1

			addQuad(i00, i01, i11)
			addQuad(i00, i11, i10)
			m.Indices = append(m.Indices, uint32(i00), uint32(i01), uint32(i11))
			m.Indices = append(m.Indices, uint32(i00), uint32(i11), uint32(i10))
		}
	}

	for i := range m.Vertices {
		if accum[i].Len() > 1e-9 {
			m.Vertices[i].Normal = accum[i].Normalize()
		} else {
			m.Vertices[i].Normal = mgl32.Vec3{0, 1, 0}
		}
	}

	return m
}

const (
	surfaceOffset = 0.02
	foamThreshold = 1.0
)

var (
	shallowColor = mgl32.Vec3{0.3, 0.55, 0.6}
	deepColor    = mgl32.Vec3{0.05, 0.2, 0.35}
	foamColor    = mgl32.Vec3{0.85, 0.9, 0.9}
)

// BuildRiverMesh builds a ribbon following each traced river path's
// centreline: at every segment, a quad spans from the current centre to
// the downstream centre, offset left/right by the segment's half-width.
func BuildRiverMesh(net *river.Network, d *drainage.Data, cellSize float64) *Mesh {
	m := &Mesh{}
	for _, path := range net.Paths {
		for i := 0; i < len(path.SegmentIndices)-1; i++ {
			cur := net.Segments[path.SegmentIndices[i]]
			next := net.Segments[path.SegmentIndices[i+1]]
			emitRiverQuad(m, cur, next, d, cellSize)
		}
	}
	return m
}

func emitRiverQuad(m *Mesh, cur, next river.Segment, d *drainage.Data, cellSize float64) {
	curPos := mgl32.Vec2{float32(float64(cur.X) * cellSize), float32(float64(cur.Z) * cellSize)}
	nextPos := mgl32.Vec2{float32(float64(next.X) * cellSize), float32(float64(next.Z) * cellSize)}

	dir := nextPos.Sub(curPos)
	if dir.Len() < 1e-6 {
		return
	}
	dir = dir.Normalize()
	perp := mgl32.Vec2{-dir[1], dir[0]}

	curLeft := curPos.Add(perp.Mul(float32(cur.Width / 2)))
	curRight := curPos.Sub(perp.Mul(float32(cur.Width / 2)))
	nextLeft := nextPos.Add(perp.Mul(float32(next.Width / 2)))
	nextRight := nextPos.Sub(perp.Mul(float32(next.Width / 2)))

	curY := float32(cur.SurfaceHeight + surfaceOffset)
	nextY := float32(next.SurfaceHeight + surfaceOffset)

	toVert := func(p mgl32.Vec2, y float32, depth float64, slope float64) Vertex {
		t := float32(clamp01(depth / 5))
		c := lerpVec3(shallowColor, deepColor, t)
		if slope > foamThreshold {
			c = lerpVec3(c, foamColor, float32(clamp01((slope-foamThreshold)/foamThreshold)))
		}
		return Vertex{Position: mgl32.Vec3{p[0], y, p[1]}, Normal: mgl32.Vec3{0, 1, 0}, Color: c}
	}

	curSlope := d.SlopeAt(cur.X, cur.Z)
	nextSlope := d.SlopeAt(next.X, next.Z)

	vCurL := toVert(curLeft, curY, cur.Depth, curSlope)
	vCurR := toVert(curRight, curY, cur.Depth, curSlope)
	vNextL := toVert(nextLeft, nextY, next.Depth, nextSlope)
	vNextR := toVert(nextRight, nextY, next.Depth, nextSlope)

	m.Vertices = append(m.Vertices, vCurL, vCurR, vNextR, vCurL, vNextR, vNextL)
}

const lakeColorDepthScale = 8.0

// BuildLakeMesh emits one flat quad per lake cell at the basin's surface
// height, coloured by depth. Basins smaller than three cells are skipped as
// not worth rendering distinct water geometry.
func BuildLakeMesh(net *lake.Network, cellSize float64) *Mesh {
	m := &Mesh{}
	for _, basin := range net.Basins {
		if len(basin.Cells) < 3 {
			continue
		}
		for _, cell := range basin.Cells {
			depth := net.DepthAt(cell[0], cell[1])
			if depth <= 0 {
				continue
			}
			emitLakeQuad(m, cell[0], cell[1], basin.SurfaceHeight, depth, cellSize)
		}
	}
	return m
}

func emitLakeQuad(m *Mesh, x, z int, surfaceHeight, depth, cellSize float64) {
	y := float32(surfaceHeight)
	x0, z0 := float32(float64(x)*cellSize), float32(float64(z)*cellSize)
	x1, z1 := float32(float64(x+1)*cellSize), float32(float64(z+1)*cellSize)

	t := float32(clamp01(depth / lakeColorDepthScale))
	color := lerpVec3(shallowColor, deepColor, t)
	normal := mgl32.Vec3{0, 1, 0}

	a := Vertex{Position: mgl32.Vec3{x0, y, z0}, Normal: normal, Color: color}
	b := Vertex{Position: mgl32.Vec3{x0, y, z1}, Normal: normal, Color: color}
	c := Vertex{Position: mgl32.Vec3{x1, y, z1}, Normal: normal, Color: color}
	dd := Vertex{Position: mgl32.Vec3{x1, y, z0}, Normal: normal, Color: color}

	m.Vertices = append(m.Vertices, a, b, c, a, c, dd)
}

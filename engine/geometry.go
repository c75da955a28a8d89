package engine

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of a triangle face.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// key identifies vertices that are equal within the given decimal
// precision, for merging.
func (v Vertex) key(precision int) string {
	return fmt.Sprintf("%v_%v_%v_%v_%v_%v_%v_%v",
		round(v.Position.X(), precision),
		round(v.Position.Y(), precision),
		round(v.Position.Z(), precision),
		round(v.Normal.X(), precision),
		round(v.Normal.Y(), precision),
		round(v.Normal.Z(), precision),
		round(v.UV.X(), precision),
		round(v.UV.Y(), precision),
	)
}

func round(v float32, precision int) float32 {
	shift := math.Pow(10, float64(precision))
	return float32(math.Floor(float64(v)*shift+0.5) / shift)
}

// Face indexes three vertices, counter-clockwise.
type Face struct {
	A, B, C int
}

// Geometry is a triangle mesh before it is uploaded to the GPU.
type Geometry struct {
	Vertices []Vertex
	Faces    []Face
}

// AddFace appends a triangle from three fresh vertices.
func (g *Geometry) AddFace(a, b, c Vertex) {
	offset := len(g.Vertices)
	g.Vertices = append(g.Vertices, a, b, c)
	g.Faces = append(g.Faces, Face{offset, offset + 1, offset + 2})
}

// MergeVertices collapses duplicate vertices and drops faces degenerated by
// the merge.
func (g *Geometry) MergeVertices() {
	lookup := map[string]int{}
	var unique []Vertex
	changed := map[int]int{}

	for i, v := range g.Vertices {
		key := v.key(4)

		if j, found := lookup[key]; !found {
			lookup[key] = i
			unique = append(unique, v)
			changed[i] = len(unique) - 1
		} else {
			changed[i] = changed[j]
		}
	}

	var cleaned []Face
	for _, f := range g.Faces {
		a, b, c := changed[f.A], changed[f.B], changed[f.C]
		if a == b || b == c || c == a {
			continue
		}
		cleaned = append(cleaned, Face{a, b, c})
	}

	g.Vertices = unique
	g.Faces = cleaned
}

// Bounds returns the axis-aligned extent of the geometry.
func (g *Geometry) Bounds() (min, max mgl32.Vec3) {
	if len(g.Vertices) == 0 {
		return
	}
	min = g.Vertices[0].Position
	max = min
	for _, v := range g.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max
}

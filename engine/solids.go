package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape enumerates the primitive meshes the scene can draw.
type Shape int

const (
	Plane Shape = iota
	Box
	Sphere
	Cylinder
	Torus
	Prism

	shapeCount
)

// ShapeCount returns the number of primitive shapes.
func ShapeCount() Shape {
	return shapeCount
}

func (s Shape) String() string {
	switch s {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Torus:
		return "torus"
	case Prism:
		return "prism"
	}
	return "unknown"
}

// BuildGeometry generates the unit-sized geometry for a primitive shape.
// Plane is 2x2 in XZ at y=0, box is a unit cube centered at the origin,
// sphere has radius 1, cylinder has radius 1 and extends from y=0 to y=1,
// torus has ring radius 1 and tube radius 0.25, prism is a unit-height
// triangular prism centered on the origin.
func BuildGeometry(s Shape) *Geometry {
	g := &Geometry{}

	switch s {
	case Plane:
		buildPlane(g)
	case Box:
		buildBox(g)
	case Sphere:
		buildSphere(g, 1, 48, 24)
	case Cylinder:
		buildCylinder(g, 1, 1, 36)
	case Torus:
		buildTorus(g, 1, 0.25, 48, 24)
	case Prism:
		buildPrism(g)
	default:
		return g
	}

	g.MergeVertices()
	return g
}

func buildPlane(g *Geometry) {
	up := mgl32.Vec3{0, 1, 0}

	a := Vertex{Position: mgl32.Vec3{-1, 0, -1}, Normal: up, UV: mgl32.Vec2{0, 1}}
	b := Vertex{Position: mgl32.Vec3{1, 0, -1}, Normal: up, UV: mgl32.Vec2{1, 1}}
	c := Vertex{Position: mgl32.Vec3{1, 0, 1}, Normal: up, UV: mgl32.Vec2{1, 0}}
	d := Vertex{Position: mgl32.Vec3{-1, 0, 1}, Normal: up, UV: mgl32.Vec2{0, 0}}

	g.AddFace(a, d, c)
	g.AddFace(a, c, b)
}

func buildBox(g *Geometry) {
	half := float32(0.5)

	a := mgl32.Vec3{half, half, half}
	b := mgl32.Vec3{-half, half, half}
	c := mgl32.Vec3{-half, -half, half}
	d := mgl32.Vec3{half, -half, half}
	e := mgl32.Vec3{half, half, -half}
	f := mgl32.Vec3{half, -half, -half}
	gg := mgl32.Vec3{-half, -half, -half}
	h := mgl32.Vec3{-half, half, -half}

	tl := mgl32.Vec2{0, 1}
	tr := mgl32.Vec2{1, 1}
	bl := mgl32.Vec2{0, 0}
	br := mgl32.Vec2{1, 0}

	quad := func(p0, p1, p2, p3 mgl32.Vec3, normal mgl32.Vec3) {
		g.AddFace(
			Vertex{Position: p0, Normal: normal, UV: tr},
			Vertex{Position: p1, Normal: normal, UV: tl},
			Vertex{Position: p2, Normal: normal, UV: bl})
		g.AddFace(
			Vertex{Position: p2, Normal: normal, UV: bl},
			Vertex{Position: p3, Normal: normal, UV: br},
			Vertex{Position: p0, Normal: normal, UV: tr})
	}

	quad(a, b, c, d, mgl32.Vec3{0, 0, 1})    // front
	quad(h, e, f, gg, mgl32.Vec3{0, 0, -1})  // back
	quad(e, h, b, a, mgl32.Vec3{0, 1, 0})    // top
	quad(d, c, gg, f, mgl32.Vec3{0, -1, 0})  // bottom
	quad(b, h, gg, c, mgl32.Vec3{-1, 0, 0})  // left
	quad(e, a, d, f, mgl32.Vec3{1, 0, 0})    // right
}

func buildSphere(g *Geometry, radius float64, widthSegments, heightSegments int) {
	var vertices, uvs [][]mgl32.Vec3

	for y := 0; y <= heightSegments; y++ {
		var verticesRow, uvsRow []mgl32.Vec3

		for x := 0; x <= widthSegments; x++ {
			u := float64(x) / float64(widthSegments)
			v := float64(y) / float64(heightSegments)

			vertex := mgl32.Vec3{
				float32(-radius * math.Cos(u*2*math.Pi) * math.Sin(v*math.Pi)),
				float32(radius * math.Cos(v*math.Pi)),
				float32(radius * math.Sin(u*2*math.Pi) * math.Sin(v*math.Pi)),
			}

			verticesRow = append(verticesRow, vertex)
			uvsRow = append(uvsRow, mgl32.Vec3{float32(u), float32(1 - v)})
		}

		vertices = append(vertices, verticesRow)
		uvs = append(uvs, uvsRow)
	}

	vertexAt := func(y, x int) Vertex {
		p := vertices[y][x]
		return Vertex{
			Position: p,
			Normal:   p.Normalize(),
			UV:       mgl32.Vec2{uvs[y][x].X(), uvs[y][x].Y()},
		}
	}

	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {
			v1 := vertexAt(y, x+1)
			v2 := vertexAt(y, x)
			v3 := vertexAt(y+1, x)
			v4 := vertexAt(y+1, x+1)

			switch {
			case y == 0: // north pole row
				g.AddFace(v1, v3, v4)
			case y == heightSegments-1: // south pole row
				g.AddFace(v1, v2, v3)
			default:
				g.AddFace(v1, v2, v4)
				g.AddFace(v2, v3, v4)
			}
		}
	}
}

func buildCylinder(g *Geometry, radius, height float64, segments int) {
	rim := func(i int) (sin, cos float64) {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		return math.Sin(theta), math.Cos(theta)
	}

	top := mgl32.Vec3{0, float32(height), 0}
	bottom := mgl32.Vec3{0, 0, 0}

	for i := 0; i < segments; i++ {
		s0, c0 := rim(i)
		s1, c1 := rim(i + 1)

		b0 := mgl32.Vec3{float32(radius * c0), 0, float32(radius * s0)}
		b1 := mgl32.Vec3{float32(radius * c1), 0, float32(radius * s1)}
		t0 := mgl32.Vec3{float32(radius * c0), float32(height), float32(radius * s0)}
		t1 := mgl32.Vec3{float32(radius * c1), float32(height), float32(radius * s1)}

		n0 := mgl32.Vec3{float32(c0), 0, float32(s0)}
		n1 := mgl32.Vec3{float32(c1), 0, float32(s1)}

		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		// side
		g.AddFace(
			Vertex{Position: b0, Normal: n0, UV: mgl32.Vec2{u0, 0}},
			Vertex{Position: t0, Normal: n0, UV: mgl32.Vec2{u0, 1}},
			Vertex{Position: t1, Normal: n1, UV: mgl32.Vec2{u1, 1}})
		g.AddFace(
			Vertex{Position: b0, Normal: n0, UV: mgl32.Vec2{u0, 0}},
			Vertex{Position: t1, Normal: n1, UV: mgl32.Vec2{u1, 1}},
			Vertex{Position: b1, Normal: n1, UV: mgl32.Vec2{u1, 0}})

		capUV := func(sin, cos float64) mgl32.Vec2 {
			return mgl32.Vec2{float32(0.5 + 0.5*cos), float32(0.5 + 0.5*sin)}
		}

		// top cap
		up := mgl32.Vec3{0, 1, 0}
		g.AddFace(
			Vertex{Position: top, Normal: up, UV: mgl32.Vec2{0.5, 0.5}},
			Vertex{Position: t1, Normal: up, UV: capUV(s1, c1)},
			Vertex{Position: t0, Normal: up, UV: capUV(s0, c0)})

		// bottom cap
		down := mgl32.Vec3{0, -1, 0}
		g.AddFace(
			Vertex{Position: bottom, Normal: down, UV: mgl32.Vec2{0.5, 0.5}},
			Vertex{Position: b0, Normal: down, UV: capUV(s0, c0)},
			Vertex{Position: b1, Normal: down, UV: capUV(s1, c1)})
	}
}

func buildTorus(g *Geometry, ringRadius, tubeRadius float64, ringSegments, tubeSegments int) {
	at := func(i, j int) Vertex {
		phi := 2 * math.Pi * float64(i) / float64(ringSegments)
		psi := 2 * math.Pi * float64(j) / float64(tubeSegments)

		return Vertex{
			Position: mgl32.Vec3{
				float32((ringRadius + tubeRadius*math.Cos(psi)) * math.Cos(phi)),
				float32(tubeRadius * math.Sin(psi)),
				float32((ringRadius + tubeRadius*math.Cos(psi)) * math.Sin(phi)),
			},
			Normal: mgl32.Vec3{
				float32(math.Cos(psi) * math.Cos(phi)),
				float32(math.Sin(psi)),
				float32(math.Cos(psi) * math.Sin(phi)),
			},
			UV: mgl32.Vec2{
				float32(i) / float32(ringSegments),
				float32(j) / float32(tubeSegments),
			},
		}
	}

	for i := 0; i < ringSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			p00 := at(i, j)
			p10 := at(i+1, j)
			p01 := at(i, j+1)
			p11 := at(i+1, j+1)

			g.AddFace(p00, p01, p11)
			g.AddFace(p00, p11, p10)
		}
	}
}

func buildPrism(g *Geometry) {
	half := float32(0.5)

	// triangular cross-section in XZ
	corners := [3]mgl32.Vec3{
		{-half, 0, -half},
		{half, 0, -half},
		{0, 0, half},
	}

	lift := func(p mgl32.Vec3, y float32) mgl32.Vec3 {
		return mgl32.Vec3{p.X(), y, p.Z()}
	}

	capUV := func(p mgl32.Vec3) mgl32.Vec2 {
		return mgl32.Vec2{p.X() + 0.5, p.Z() + 0.5}
	}

	// top cap
	up := mgl32.Vec3{0, 1, 0}
	g.AddFace(
		Vertex{Position: lift(corners[0], half), Normal: up, UV: capUV(corners[0])},
		Vertex{Position: lift(corners[2], half), Normal: up, UV: capUV(corners[2])},
		Vertex{Position: lift(corners[1], half), Normal: up, UV: capUV(corners[1])})

	// bottom cap
	down := mgl32.Vec3{0, -1, 0}
	g.AddFace(
		Vertex{Position: lift(corners[0], -half), Normal: down, UV: capUV(corners[0])},
		Vertex{Position: lift(corners[1], -half), Normal: down, UV: capUV(corners[1])},
		Vertex{Position: lift(corners[2], -half), Normal: down, UV: capUV(corners[2])})

	// sides
	for i := 0; i < 3; i++ {
		pa := corners[i]
		pb := corners[(i+1)%3]

		edge := pb.Sub(pa)
		normal := mgl32.Vec3{edge.Z(), 0, -edge.X()}.Normalize()

		ba := Vertex{Position: lift(pa, -half), Normal: normal, UV: mgl32.Vec2{0, 0}}
		bb := Vertex{Position: lift(pb, -half), Normal: normal, UV: mgl32.Vec2{1, 0}}
		ta := Vertex{Position: lift(pa, half), Normal: normal, UV: mgl32.Vec2{0, 1}}
		tb := Vertex{Position: lift(pb, half), Normal: normal, UV: mgl32.Vec2{1, 1}}

		g.AddFace(ba, ta, tb)
		g.AddFace(ba, tb, bb)
	}
}

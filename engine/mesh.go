package engine

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// meshBuffer holds one uploaded geometry: a VAO with position, normal and
// uv buffers plus an index buffer.
type meshBuffer struct {
	vao            uint32
	faceBuffer     uint32
	positionBuffer uint32
	normalBuffer   uint32
	uvBuffer       uint32

	indexCount int32
}

func newMeshBuffer(g *Geometry) *meshBuffer {
	mb := &meshBuffer{
		indexCount: int32(len(g.Faces) * 3),
	}

	nvertices := len(g.Vertices)
	positionArray := make([]float32, nvertices*3)
	normalArray := make([]float32, nvertices*3)
	uvArray := make([]float32, nvertices*2)
	faceArray := make([]uint16, len(g.Faces)*3) // uint32 if vertices > 65535

	for i, v := range g.Vertices {
		positionArray[i*3] = v.Position.X()
		positionArray[i*3+1] = v.Position.Y()
		positionArray[i*3+2] = v.Position.Z()

		normalArray[i*3] = v.Normal.X()
		normalArray[i*3+1] = v.Normal.Y()
		normalArray[i*3+2] = v.Normal.Z()

		uvArray[i*2] = v.UV.X()
		uvArray[i*2+1] = v.UV.Y()
	}

	for i, f := range g.Faces {
		faceArray[i*3] = uint16(f.A)
		faceArray[i*3+1] = uint16(f.B)
		faceArray[i*3+2] = uint16(f.C)
	}

	gl.GenVertexArrays(1, &mb.vao)
	gl.GenBuffers(1, &mb.positionBuffer)
	gl.GenBuffers(1, &mb.normalBuffer)
	gl.GenBuffers(1, &mb.uvBuffer)
	gl.GenBuffers(1, &mb.faceBuffer)

	gl.BindVertexArray(mb.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, mb.positionBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(positionArray)*4, gl.Ptr(positionArray), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, mb.normalBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(normalArray)*4, gl.Ptr(normalArray), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, mb.uvBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(uvArray)*4, gl.Ptr(uvArray), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.faceBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(faceArray)*2, gl.Ptr(faceArray), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return mb
}

func (mb *meshBuffer) draw() {
	gl.BindVertexArray(mb.vao)
	gl.DrawElements(gl.TRIANGLES, mb.indexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (mb *meshBuffer) dispose() {
	gl.DeleteBuffers(1, &mb.positionBuffer)
	gl.DeleteBuffers(1, &mb.normalBuffer)
	gl.DeleteBuffers(1, &mb.uvBuffer)
	gl.DeleteBuffers(1, &mb.faceBuffer)
	gl.DeleteVertexArrays(1, &mb.vao)
}

// MeshLibrary generates and uploads each primitive at most once, no matter
// how many times it is drawn, and issues indexed draws by shape kind.
type MeshLibrary struct {
	buffers [shapeCount]*meshBuffer
}

func NewMeshLibrary() *MeshLibrary {
	return &MeshLibrary{}
}

// Load generates and uploads the shape's geometry. Loading an already
// loaded shape is a no-op.
func (l *MeshLibrary) Load(s Shape) {
	if s < 0 || s >= shapeCount || l.buffers[s] != nil {
		return
	}
	l.buffers[s] = newMeshBuffer(BuildGeometry(s))
}

// Draw renders one instance of the shape with whatever transform, texture
// and material state is currently bound. Drawing a shape that was never
// loaded logs and renders nothing.
func (l *MeshLibrary) Draw(s Shape) {
	if s < 0 || s >= shapeCount || l.buffers[s] == nil {
		log.Printf("draw: mesh %v not loaded", s)
		return
	}
	l.buffers[s].draw()
}

// Dispose frees every uploaded mesh at once.
func (l *MeshLibrary) Dispose() {
	for i, mb := range l.buffers {
		if mb != nil {
			mb.dispose()
			l.buffers[i] = nil
		}
	}
}

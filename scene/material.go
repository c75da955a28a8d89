package scene

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong coefficients pushed into the fragment shader
// for objects that carry a material tag.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry is an ordered collection of named materials.
type MaterialRegistry struct {
	materials []Material
}

// Define appends a material. Duplicate tags are allowed; Find returns
// the earliest definition.
func (r *MaterialRegistry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material with the given tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Count() int {
	return len(r.materials)
}

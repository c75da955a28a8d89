package scene

import (
	"log"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Reese-Thurman/CS-330/engine"
)

// UniformSetter is the slice of the shader program the scene writes to.
type UniformSetter interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec4(name string, v mgl32.Vec4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec2(name string, v mgl32.Vec2)
	SetFloat(name string, f float32)
	SetBool(name string, b bool)
	SetSampler(name string, unit int32)
}

// Meshes owns the GPU geometry for the primitive shapes.
type Meshes interface {
	Load(s engine.Shape)
	Draw(s engine.Shape)
}

// Light is one point light in the shader's lightSources array.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// Manager prepares the still life scene and renders it each frame.
type Manager struct {
	program   UniformSetter
	meshes    Meshes
	textures  *engine.TextureRegistry
	materials MaterialRegistry

	objects []Object
	uvScale mgl32.Vec2
}

func NewManager(program UniformSetter, meshes Meshes, textures *engine.TextureRegistry) *Manager {
	return &Manager{
		program:  program,
		meshes:   meshes,
		textures: textures,
		objects:  StillLifeObjects(),
		uvScale:  mgl32.Vec2{1, 1},
	}
}

// textureFiles maps asset file names to the tags the object table uses.
var textureFiles = []struct {
	file string
	tag  string
}{
	{"sphere.jpg", "sphere"},
	{"torus.jpg", "torus"},
	{"plane.jpg", "plane"},
	{"cylinder.jpg", "cylinder"},
	{"prism.jpg", "prism"},
	{"orchard.jpg", "plane2"},
}

// PrepareScene loads textures and meshes, defines materials and lights,
// and sets the frame-invariant uniforms. Failed texture loads are logged
// and skipped so the scene still renders with flat colors.
func (m *Manager) PrepareScene(assetDir string) {
	for _, t := range textureFiles {
		path := filepath.Join(assetDir, t.file)
		if err := m.textures.Load(path, t.tag); err != nil {
			log.Printf("scene: texture %s: %v", t.tag, err)
		}
	}
	m.textures.BindAll()

	m.materials.Define(Material{
		Tag:             "shine",
		AmbientColor:    mgl32.Vec3{1, 1, 1},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{1, 1, 1},
		SpecularColor:   mgl32.Vec3{1, 1, 1},
		Shininess:       8,
	})

	for i, l := range StillLifeLights() {
		m.setLight(i, l)
	}
	m.program.SetBool("bUseLighting", true)

	for s := engine.Shape(0); s < engine.ShapeCount(); s++ {
		m.meshes.Load(s)
	}

	m.SetUVScale(mgl32.Vec2{1, 1})
}

// StillLifeLights returns the four point lights around the table.
func StillLifeLights() []Light {
	base := Light{
		AmbientColor:      mgl32.Vec3{0.7, 0.7, 0.7},
		DiffuseColor:      mgl32.Vec3{1, 1, 1},
		SpecularColor:     mgl32.Vec3{1, 1, 1},
		FocalStrength:     25.01,
		SpecularIntensity: 0.05,
	}

	overhead := base
	overhead.Position = mgl32.Vec3{0, 25, -12}
	overhead.SpecularIntensity = 0.5

	left := base
	left.Position = mgl32.Vec3{-25, 5, 0}

	right := base
	right.Position = mgl32.Vec3{25, 5, 0}

	front := base
	front.Position = mgl32.Vec3{0, 0, 25}

	return []Light{overhead, left, right, front}
}

func (m *Manager) setLight(i int, l Light) {
	name := engine.LightUniform(i)
	m.program.SetVec3(name+".position", l.Position)
	m.program.SetVec3(name+".ambientColor", l.AmbientColor)
	m.program.SetVec3(name+".diffuseColor", l.DiffuseColor)
	m.program.SetVec3(name+".specularColor", l.SpecularColor)
	m.program.SetFloat(name+".focalStrength", l.FocalStrength)
	m.program.SetFloat(name+".specularIntensity", l.SpecularIntensity)
}

// Transform composes translation, Z then Y then X rotation, and scale
// into the model matrix. Rotation angles are degrees.
func Transform(scale, rotation, position mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation.Z()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y()))
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X()))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// SetTransform pushes the composed model matrix for the next draw.
func (m *Manager) SetTransform(scale, rotation, position mgl32.Vec3) {
	m.program.SetMat4("model", Transform(scale, rotation, position))
}

// SetColor switches the shader to flat color mode.
func (m *Manager) SetColor(c mgl32.Vec4) {
	m.program.SetBool("bUseTexture", false)
	m.program.SetVec4("objectColor", c)
}

// SetTexture switches the shader to textured mode, sampling the texture
// registered under tag. An unknown tag binds unit -1, which samples
// nothing but does not abort the draw.
func (m *Manager) SetTexture(tag string) {
	m.program.SetBool("bUseTexture", true)
	m.program.SetSampler("objectTexture", int32(m.textures.FindUnit(tag)))
}

// SetUVScale sets the texture coordinate multiplier that draws use unless
// an object carries its own override.
func (m *Manager) SetUVScale(scale mgl32.Vec2) {
	m.uvScale = scale
	m.program.SetVec2("UVscale", scale)
}

// SetMaterial pushes the named material's coefficients. Empty or
// unknown tags leave the current material uniforms untouched.
func (m *Manager) SetMaterial(tag string) {
	if tag == "" {
		return
	}
	mat, ok := m.materials.Find(tag)
	if !ok {
		return
	}
	m.program.SetVec3("material.ambientColor", mat.AmbientColor)
	m.program.SetFloat("material.ambientStrength", mat.AmbientStrength)
	m.program.SetVec3("material.diffuseColor", mat.DiffuseColor)
	m.program.SetVec3("material.specularColor", mat.SpecularColor)
	m.program.SetFloat("material.shininess", mat.Shininess)
}

// RenderScene draws every object in the scene table.
func (m *Manager) RenderScene() {
	for _, o := range m.objects {
		m.SetTransform(o.Scale, o.Rotation, o.Position)
		if o.UVScale != (mgl32.Vec2{}) {
			m.program.SetVec2("UVscale", o.UVScale)
		}
		if o.Texture != "" {
			m.SetTexture(o.Texture)
		} else {
			m.SetColor(o.Color)
		}
		m.SetMaterial(o.Material)
		m.meshes.Draw(o.Shape)
		if o.UVScale != (mgl32.Vec2{}) {
			m.program.SetVec2("UVscale", m.uvScale)
		}
	}
}

// Objects exposes the scene table.
func (m *Manager) Objects() []Object {
	return m.objects
}

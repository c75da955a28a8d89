package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program wraps a linked GLSL program and caches uniform locations by
// name. Uniforms are write-only from the caller's perspective; an unknown
// name resolves to location -1, which the driver ignores.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a vertex/fragment shader pair and resolves
// the locations of the named uniforms.
func NewProgram(vertex, fragment string, uniforms []string) (*Program, error) {
	vshader, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vshader)

	fshader, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fshader)

	prg := &Program{
		handle:   gl.CreateProgram(),
		uniforms: make(map[string]int32, len(uniforms)),
	}

	gl.AttachShader(prg.handle, vshader)
	gl.AttachShader(prg.handle, fshader)
	gl.LinkProgram(prg.handle)

	var status int32
	gl.GetProgramiv(prg.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return nil, fmt.Errorf("linker error: %v", programInfoLog(prg.handle))
	}

	for _, u := range uniforms {
		prg.uniforms[u] = gl.GetUniformLocation(prg.handle, gl.Str(u+"\x00"))
	}

	return prg, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		logBuf := make([]byte, length+1)
		gl.GetShaderInfoLog(shader, length, nil, &logBuf[0])
		return 0, fmt.Errorf("%s", logBuf)
	}

	return shader, nil
}

func programInfoLog(handle uint32) string {
	var length int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
	logBuf := make([]byte, length+1)
	gl.GetProgramInfoLog(handle, length, nil, &logBuf[0])
	return string(logBuf)
}

func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

func (p *Program) Dispose() {
	gl.DeleteProgram(p.handle)
}

// location returns -1 for any uniform that was not registered, mirroring
// what GL returns for names absent from the program.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &v[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v.X(), v.Y(), v.Z(), v.W())
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v.X(), v.Y(), v.Z())
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.location(name), v.X(), v.Y())
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetBool(name string, v bool) {
	if v {
		gl.Uniform1i(p.location(name), 1)
	} else {
		gl.Uniform1i(p.location(name), 0)
	}
}

// SetSampler assigns a texture unit index to a sampler2D uniform. A unit of
// -1 means the tag never resolved; the value is still written so a broken
// lookup degrades visibly instead of crashing.
func (p *Program) SetSampler(name string, unit int32) {
	gl.Uniform1i(p.location(name), unit)
}

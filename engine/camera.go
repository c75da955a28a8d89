package engine

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-look perspective camera driven by WASD/QE keys, mouse
// look and scroll zoom.
type Camera struct {
	Position mgl32.Vec3
	Speed    float32

	yaw   float64
	pitch float64
	fov   float64

	front mgl32.Vec3
	up    mgl32.Vec3

	lastX, lastY float64
	firstMouse   bool
}

func NewCamera(position mgl32.Vec3, speed float32) *Camera {
	c := &Camera{
		Position:   position,
		Speed:      speed,
		yaw:        -90, // looking down -Z
		fov:        45,
		up:         mgl32.Vec3{0, 1, 0},
		firstMouse: true,
	}
	c.updateFront()
	return c
}

func (c *Camera) updateFront() {
	yaw := mgl32.DegToRad(float32(c.yaw))
	pitch := mgl32.DegToRad(float32(c.pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(float64(yaw)) * math.Cos(float64(pitch))),
		float32(math.Sin(float64(pitch))),
		float32(math.Sin(float64(yaw)) * math.Cos(float64(pitch))),
	}.Normalize()
}

// View returns the camera's view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(c.fov)), aspect, 0.1, 200)
}

// ProcessKeys moves the camera for one frame of held keys.
func (c *Camera) ProcessKeys(w *glfw.Window, dt float32) {
	step := c.Speed * dt
	right := c.front.Cross(c.up).Normalize()

	if w.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(c.front.Mul(step))
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(c.front.Mul(step))
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(right.Mul(step))
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(right.Mul(step))
	}
	if w.GetKey(glfw.KeyQ) == glfw.Press {
		c.Position = c.Position.Add(c.up.Mul(step))
	}
	if w.GetKey(glfw.KeyE) == glfw.Press {
		c.Position = c.Position.Sub(c.up.Mul(step))
	}
}

// OnMouseMove adjusts yaw and pitch from cursor movement.
func (c *Camera) OnMouseMove(x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
	}

	const sensitivity = 0.1
	c.yaw += (x - c.lastX) * sensitivity
	c.pitch += (c.lastY - y) * sensitivity
	c.lastX, c.lastY = x, y

	if c.pitch > 89 {
		c.pitch = 89
	}
	if c.pitch < -89 {
		c.pitch = -89
	}

	c.updateFront()
}

// OnScroll zooms by narrowing or widening the field of view.
func (c *Camera) OnScroll(yoff float64) {
	c.fov -= yoff
	if c.fov < 1 {
		c.fov = 1
	}
	if c.fov > 60 {
		c.fov = 60
	}
}

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Reese-Thurman/CS-330/engine"
)

// Object is one entry in the scene table. An object is either textured
// (Texture set) or flat colored (Color used when Texture is empty).
// Rotation is Euler angles in degrees, applied Z then Y then X.
type Object struct {
	Shape    engine.Shape
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Position mgl32.Vec3
	Texture  string
	Color    mgl32.Vec4
	Material string

	// UVScale overrides the texture coordinate multiplier for this object
	// when nonzero.
	UVScale mgl32.Vec2
}

// StillLifeObjects returns the full scene: table top and backdrops, the
// easel frame, apples with stems, the woven basket, leaves, and planks
// on the floor.
func StillLifeObjects() []Object {
	white := mgl32.Vec4{1, 1, 1, 1}

	return []Object{
		// table top and backdrop planes
		{Shape: engine.Box, Scale: mgl32.Vec3{40, 5, 20}, Position: mgl32.Vec3{0, -2.5, -2}, Texture: "plane", Material: "shine"},
		{Shape: engine.Plane, Scale: mgl32.Vec3{20, 25, 8}, Texture: "plane", Material: "shine"},
		{Shape: engine.Plane, Scale: mgl32.Vec3{20, 25, 12}, Rotation: mgl32.Vec3{90, 0, 0}, Position: mgl32.Vec3{0, 12, -12}, Texture: "plane2", Material: "shine"},

		// easel uprights
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.10, 23.90, 0.08}, Position: mgl32.Vec3{-20, 0, -12}, Color: white},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.10, 23.90, 0.08}, Position: mgl32.Vec3{20, 0, -12}, Color: white},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.10, 23.90, 0.08}, Position: mgl32.Vec3{7, 0, -12}, Color: white},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.10, 23.90, 0.08}, Position: mgl32.Vec3{-7, 0, -12}, Color: white},

		// easel crossbars
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.25, 40, 0.08}, Rotation: mgl32.Vec3{90, 90, 0}, Position: mgl32.Vec3{-20, 17, -12}, Color: white},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.25, 40, 0.08}, Rotation: mgl32.Vec3{90, 90, 0}, Position: mgl32.Vec3{-20, 24, -12}, Color: white},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.25, 40, 0.08}, Rotation: mgl32.Vec3{90, 90, 0}, Position: mgl32.Vec3{-20, 8, -12}, Color: white},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.25, 40, 0.08}, Rotation: mgl32.Vec3{90, 90, 0}, Position: mgl32.Vec3{-20, 0, -12}, Color: white},

		// apples on the table with stems
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{0, 0, -20}, Position: mgl32.Vec3{-0.20, 2.15, 2.0}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Position: mgl32.Vec3{-0.20, 1.15, 2.0}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{90, -90, 20}, Position: mgl32.Vec3{-8.00, 1.30, 2.0}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, -90, 0}, Position: mgl32.Vec3{-7.00, 1.15, 2.0}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{0, 0, -40}, Position: mgl32.Vec3{-2.0, 1.75, 2.0}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{-2.5, 1.15, 2.0}, Texture: "sphere"},

		// woven basket: base, body, rim
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{5, 5, 5}, Position: mgl32.Vec3{6, 0.15, 0}, Texture: "torus"},
		{Shape: engine.Torus, Scale: mgl32.Vec3{4, 4.5, 4}, Position: mgl32.Vec3{6, 5, 0.6}, Texture: "torus"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{4, 4.10, 0.10}, Rotation: mgl32.Vec3{90, 0, 0}, Position: mgl32.Vec3{6, 5.20, 0}, Texture: "torus"},
		{Shape: engine.Torus, Scale: mgl32.Vec3{4.20, 4.20, 4.20}, Rotation: mgl32.Vec3{90, 0, 0}, Position: mgl32.Vec3{6, 5, 0}, Texture: "torus"},

		// leaf on the table apple
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.02, 0.5, 0.1}, Rotation: mgl32.Vec3{0, 0, 55}, Position: mgl32.Vec3{-0.12, 2.45, 2.0}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{0.50, 0.10, 0.50}, Rotation: mgl32.Vec3{90, 0, -125}, Position: mgl32.Vec3{-0.65, 2.85, 2.0}, Texture: "prism"},

		// apples heaped in the basket
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{7.60, 5.15, 2.0}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{20, 0, -20}, Position: mgl32.Vec3{7.35, 5.90, 2.0}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.20, 1.05, 1.20}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{5.70, 5.15, 2.25}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{0, 0, 20}, Position: mgl32.Vec3{5.60, 5.80, 2.25}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.05, 1.00, 1.05}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{3.70, 5.15, 2.25}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{-60, 0, 0}, Position: mgl32.Vec3{3.60, 5.90, 2.25}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{7.75, 5.15, 0.0}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{0, 0, -25}, Position: mgl32.Vec3{7.75, 5.75, 0.0}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{5.75, 5.15, 0.25}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{0, 0, 25}, Position: mgl32.Vec3{5.75, 6.00, 0.25}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{3.75, 5.15, 0.25}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Position: mgl32.Vec3{3.75, 5.75, 0.25}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{6.25, 5.15, -0.90}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{0, 0, -20}, Position: mgl32.Vec3{6.25, 5.80, -0.90}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{4.25, 5.15, -0.90}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Rotation: mgl32.Vec3{0, 0, 20}, Position: mgl32.Vec3{4.25, 5.90, -0.90}, Texture: "cylinder"},
		{Shape: engine.Sphere, Scale: mgl32.Vec3{1.25, 1.10, 1.25}, Rotation: mgl32.Vec3{0, 0, 40}, Position: mgl32.Vec3{6.75, 5.15, -2.90}, Texture: "sphere"},
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.04, 0.9, 0.1}, Position: mgl32.Vec3{6.75, 6.00, -2.90}, Texture: "cylinder"},

		// leaves tucked into the basket
		{Shape: engine.Prism, Scale: mgl32.Vec3{0.60, 0.10, 0.60}, Rotation: mgl32.Vec3{90, 0, 100}, Position: mgl32.Vec3{8.15, 5.65, -2.25}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{0.60, 0.10, 0.60}, Rotation: mgl32.Vec3{90, 0, 100}, Position: mgl32.Vec3{5.15, 5.65, -2.25}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{0.60, 0.10, 0.60}, Rotation: mgl32.Vec3{45, 0, 0}, Position: mgl32.Vec3{2.15, 5.92, 2.05}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{0.60, 0.10, 0.60}, Rotation: mgl32.Vec3{90, 0, 50}, Position: mgl32.Vec3{8.30, 5.65, -2.00}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{0.60, 0.10, 0.60}, Rotation: mgl32.Vec3{-90, 0, 75}, Position: mgl32.Vec3{8.40, 5.65, -1.75}, Texture: "prism"},

		// leaf with stem on the basket rim
		{Shape: engine.Cylinder, Scale: mgl32.Vec3{0.02, 0.5, 0.05}, Rotation: mgl32.Vec3{0, 0, 55}, Position: mgl32.Vec3{7.10, 5.28, 3.08}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{0.50, 0.10, 0.50}, Rotation: mgl32.Vec3{90, 0, -125}, Position: mgl32.Vec3{6.65, 5.55, 3.12}, Texture: "prism"},

		// leaves scattered on the floor
		{Shape: engine.Prism, Scale: mgl32.Vec3{1.0, 0.10, 1.0}, Rotation: mgl32.Vec3{0, 90, 5}, Position: mgl32.Vec3{-11.0, 0.010, 3.00}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{1.0, 0.10, 1.0}, Rotation: mgl32.Vec3{0, 75, 5}, Position: mgl32.Vec3{-11.25, 0.010, 3.00}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{1.0, 0.10, 1.0}, Rotation: mgl32.Vec3{0, 25, 0}, Position: mgl32.Vec3{-11.5, 0.010, 2.50}, Texture: "prism"},
		{Shape: engine.Prism, Scale: mgl32.Vec3{1.0, 0.10, 1.0}, Rotation: mgl32.Vec3{0, 15, 3}, Position: mgl32.Vec3{-12.0, 0.010, 3.00}, Texture: "prism"},
	}
}

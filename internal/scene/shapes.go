package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Kind selects the mesh a Shape is drawn with.
type Kind int

const (
	KindCube Kind = iota
	KindSphere
	KindTorus
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindSphere:
		return "sphere"
	case KindTorus:
		return "torus"
	case KindPlane:
		return "plane"
	}
	return "unknown"
}

// Shading selects the lighting model of a material.
type Shading int

const (
	// ShadingPhong has a specular highlight controlled by Shininess.
	ShadingPhong Shading = iota
	// ShadingLambert is diffuse only.
	ShadingLambert
)

// Material is the surface of a shape. Opacity 1 is opaque.
type Material struct {
	Color     color.RGBA
	Shading   Shading
	Shininess float64
	Opacity   float64
}

// Shape is one renderable object. Rotation holds Euler angles in radians (X, Y, Z).
type Shape struct {
	ID       uuid.UUID
	Name     string
	Kind     Kind
	Size     mgl64.Vec3 // box extents; radius in X for sphere; ring radius and tube radius in X, Y for torus
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Material Material
}

func newShape(name string, kind Kind, size, pos mgl64.Vec3, mtl Material) *Shape {
	return &Shape{
		ID:       uuid.New(),
		Name:     name,
		Kind:     kind,
		Size:     size,
		Position: pos,
		Material: mtl,
	}
}

// Shapes are the animated objects, referenced by name rather than list position.
type Shapes struct {
	Cube   *Shape
	Sphere *Shape
	Torus  *Shape
}

// All returns the shapes in their fixed order: cube, sphere, torus.
func (s Shapes) All() []*Shape {
	return []*Shape{s.Cube, s.Sphere, s.Torus}
}

func defaultShapes() Shapes {
	return Shapes{
		Cube: newShape("cube", KindCube, mgl64.Vec3{2, 2, 2}, mgl64.Vec3{-4, 0, 0}, Material{
			Color: Hex(0xff6b6b), Shading: ShadingPhong, Shininess: 100, Opacity: 1,
		}),
		Sphere: newShape("sphere", KindSphere, mgl64.Vec3{1.5, 0, 0}, mgl64.Vec3{0, 0, 0}, Material{
			Color: Hex(0x4ecdc4), Shading: ShadingLambert, Opacity: 1,
		}),
		Torus: newShape("torus", KindTorus, mgl64.Vec3{1.2, 0.4, 0}, mgl64.Vec3{4, 0, 0}, Material{
			Color: Hex(0xffe66d), Shading: ShadingPhong, Shininess: 30, Opacity: 1,
		}),
	}
}

func defaultGround() *Shape {
	return newShape("ground", KindPlane, mgl64.Vec3{20, 0, 20}, mgl64.Vec3{0, -3, 0}, Material{
		Color: Hex(0x2c3e50), Shading: ShadingLambert, Opacity: 0.8,
	})
}

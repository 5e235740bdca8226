package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     color.RGBA
	Intensity float64
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float64
	Position  mgl64.Vec3
}

// PointLight falls off linearly to zero at Distance.
type PointLight struct {
	Color     color.RGBA
	Intensity float64
	Distance  float64
	Position  mgl64.Vec3
}

// Lights groups the scene lights. Point is the one the animation orbits.
type Lights struct {
	Ambient     AmbientLight
	Directional DirectionalLight
	Point       PointLight
}

// Fog blends geometry toward Color between Near and Far.
type Fog struct {
	Color     color.RGBA
	Near, Far float64
}

func defaultLights() Lights {
	return Lights{
		Ambient:     AmbientLight{Color: Hex(0x404040), Intensity: 0.6},
		Directional: DirectionalLight{Color: Hex(0xffffff), Intensity: 1, Position: mgl64.Vec3{10, 10, 5}},
		Point:       PointLight{Color: Hex(0xff6b6b), Intensity: 0.8, Distance: 50, Position: mgl64.Vec3{-10, 10, -10}},
	}
}

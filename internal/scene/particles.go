package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultParticleCount  = 100
	DefaultParticleSpread = 50
)

// Particles is a static point cloud drawn around the shapes.
type Particles struct {
	Positions []mgl32.Vec3
	Color     color.RGBA
	Size      float32
	Opacity   float32
}

// NewParticles scatters count points uniformly in a cube of side spread centered on the origin.
func NewParticles(rng Rand, count int, spread float64) Particles {
	if count < 0 {
		count = 0
	}
	p := Particles{
		Positions: make([]mgl32.Vec3, count),
		Color:     Hex(0xffffff),
		Size:      0.1,
		Opacity:   0.6,
	}
	for i := range p.Positions {
		for j := 0; j < 3; j++ {
			p.Positions[i][j] = float32((rng.Float64() - 0.5) * spread)
		}
	}
	return p
}

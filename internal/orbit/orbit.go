package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinPolar and MaxPolar keep the camera off the poles so LookAt never flips.
	MinPolar = 0.1
	MaxPolar = math.Pi - 0.1

	// MinDistance and MaxDistance bound the camera's distance from the origin after a zoom.
	MinDistance = 3.0
	MaxDistance = 50.0

	// DragSpeed converts a normalized pointer offset into radians per move event.
	DragSpeed = 0.01
	// ZoomSpeed converts a wheel delta into a fractional change of distance.
	ZoomSpeed = 0.001
)

// Spherical is a point as (radius, polar angle from +Y, azimuth around Y measured from +Z).
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// FromCartesian converts v to spherical coordinates. The zero vector maps to the zero Spherical.
func FromCartesian(v mgl64.Vec3) Spherical {
	r := v.Len()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v.X(), v.Z()),
		Phi:    math.Acos(mgl64.Clamp(v.Y()/r, -1, 1)),
	}
}

// Cartesian converts s back to a position vector.
func (s Spherical) Cartesian() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// ClampPolar returns s with Phi clamped to [MinPolar, MaxPolar].
func (s Spherical) ClampPolar() Spherical {
	s.Phi = mgl64.Clamp(s.Phi, MinPolar, MaxPolar)
	return s
}

// Rotate nudges pos around the origin by dx, dy (normalized pointer offsets).
// Azimuth grows with dx, polar angle with dy.
func Rotate(pos mgl64.Vec3, dx, dy float64) mgl64.Vec3 {
	s := FromCartesian(pos)
	s.Theta += dx * DragSpeed
	s.Phi += dy * DragSpeed
	return s.ClampPolar().Cartesian()
}

// Zoom scales pos by 1+deltaY*ZoomSpeed and clamps its length to [MinDistance, MaxDistance].
// A scale of exactly zero keeps the direction of pos at MinDistance.
func Zoom(pos mgl64.Vec3, deltaY float64) mgl64.Vec3 {
	z := pos.Mul(1 + deltaY*ZoomSpeed)
	if z.Len() == 0 && pos.Len() > 0 {
		return pos.Mul(MinDistance / pos.Len())
	}
	return ClampLength(z, MinDistance, MaxDistance)
}

// ClampLength rescales v so its length lies in [lo, hi]. The zero vector stays zero.
func ClampLength(v mgl64.Vec3, lo, hi float64) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(mgl64.Clamp(l, lo, hi) / l)
}

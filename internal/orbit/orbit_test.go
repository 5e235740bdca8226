package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func TestFromCartesianAxes(t *testing.T) {
	tests := []struct {
		name  string
		v     mgl64.Vec3
		phi   float64
		theta float64
	}{
		{"up", mgl64.Vec3{0, 2, 0}, 0, 0},
		{"down", mgl64.Vec3{0, -2, 0}, math.Pi, 0},
		{"plus z", mgl64.Vec3{0, 0, 5}, math.Pi / 2, 0},
		{"plus x", mgl64.Vec3{5, 0, 0}, math.Pi / 2, math.Pi / 2},
		{"minus x", mgl64.Vec3{-5, 0, 0}, math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromCartesian(tt.v)
			if math.Abs(s.Phi-tt.phi) > eps || math.Abs(s.Theta-tt.theta) > eps {
				t.Fatalf("FromCartesian(%v) = phi %v theta %v, want phi %v theta %v", tt.v, s.Phi, s.Theta, tt.phi, tt.theta)
			}
			if math.Abs(s.Radius-tt.v.Len()) > eps {
				t.Fatalf("radius = %v, want %v", s.Radius, tt.v.Len())
			}
		})
	}
}

func TestFromCartesianZero(t *testing.T) {
	if s := FromCartesian(mgl64.Vec3{}); s != (Spherical{}) {
		t.Fatalf("FromCartesian(0) = %+v, want zero", s)
	}
}

func TestCartesianRestoresPosition(t *testing.T) {
	p := mgl64.Vec3{8, 5, 8}
	got := FromCartesian(p).Cartesian()
	if !got.ApproxEqualThreshold(p, eps) {
		t.Fatalf("round trip = %v, want %v", got, p)
	}
}

func TestRotateAzimuthOnly(t *testing.T) {
	p := mgl64.Vec3{8, 5, 8}
	before := FromCartesian(p)
	after := FromCartesian(Rotate(p, 0.1, 0))

	if d := after.Theta - before.Theta; math.Abs(d-0.001) > eps {
		t.Fatalf("azimuth change = %v, want 0.001", d)
	}
	if math.Abs(after.Phi-before.Phi) > eps {
		t.Fatalf("polar changed from %v to %v", before.Phi, after.Phi)
	}
	if math.Abs(after.Radius-before.Radius) > eps {
		t.Fatalf("radius changed from %v to %v", before.Radius, after.Radius)
	}
}

func TestRotateKeepsPolarOffPoles(t *testing.T) {
	for _, dy := range []float64{1, -1} {
		p := mgl64.Vec3{8, 5, 8}
		for i := 0; i < 1000; i++ {
			p = Rotate(p, 0.3, dy)
			phi := FromCartesian(p).Phi
			if phi < MinPolar-eps || phi > MaxPolar+eps {
				t.Fatalf("dy=%v step %d: phi %v outside [%v, %v]", dy, i, phi, MinPolar, MaxPolar)
			}
		}
	}
}

func TestZoomClampsDistance(t *testing.T) {
	tests := []struct {
		name   string
		deltaY float64
		want   float64
	}{
		{"no change", 0, math.Sqrt(153)},
		{"zoom in a little", -100, math.Sqrt(153) * 0.9},
		{"zoom out far", 1e6, MaxDistance},
		{"zoom in far", -999, MinDistance},
		{"scale to exactly zero", -1000, MinDistance},
		{"scale through zero", -5000, math.Sqrt(153) * 4},
		{"scale through zero far", -60000, MaxDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Zoom(mgl64.Vec3{8, 5, 8}, tt.deltaY).Len()
			if math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("Zoom length = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZoomToZeroKeepsDirection(t *testing.T) {
	pos := mgl64.Vec3{8, 5, 8}
	got := Zoom(pos, -1000)
	want := pos.Normalize().Mul(MinDistance)
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("Zoom(-1000) = %v, want %v", got, want)
	}
}

func TestClampLengthZeroVector(t *testing.T) {
	if got := ClampLength(mgl64.Vec3{}, 3, 50); got != (mgl64.Vec3{}) {
		t.Fatalf("ClampLength(0) = %v, want zero", got)
	}
}

package camera

import (
	"math"
	"testing"

	"raycast-renderer/internal/mathutil"
)

const tolerance = 1e-9

func near(a, b mathutil.Vec3) bool {
	return a.Sub(b).Len() < tolerance
}

func TestDefault_Corners(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		u, v float64
		dir  mathutil.Vec3
	}{
		{"lower left", 0, 0, mathutil.Vec3{-2, -1, -1}},
		{"lower right", 1, 0, mathutil.Vec3{2, -1, -1}},
		{"upper left", 0, 1, mathutil.Vec3{-2, 1, -1}},
		{"center", 0.5, 0.5, mathutil.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Ray(tt.u, tt.v)
			if r.Origin != (mathutil.Vec3{}) {
				t.Errorf("origin = %v", r.Origin)
			}
			if !near(r.Direction, tt.dir) {
				t.Errorf("direction = %v, want %v", r.Direction, tt.dir)
			}
		})
	}
}

func TestNew_CenterRayLooksAtTarget(t *testing.T) {
	c := New(Config{
		LookFrom: mathutil.Vec3{3, 2, 1},
		LookAt:   mathutil.Vec3{0, 0, -1},
		VFov:     40,
		Aspect:   16.0 / 9.0,
	})
	r := c.Ray(0.5, 0.5)
	if r.Origin != (mathutil.Vec3{3, 2, 1}) {
		t.Errorf("origin = %v", r.Origin)
	}
	want := mathutil.Vec3{0, 0, -1}.Sub(mathutil.Vec3{3, 2, 1}).Normalize()
	if got := r.Direction.Normalize(); !near(got, want) {
		t.Errorf("center direction = %v, want %v", got, want)
	}
}

func TestNew_FieldOfView(t *testing.T) {
	c := New(Config{LookAt: mathutil.Vec3{0, 0, -1}, VFov: 90, Aspect: 1})
	top := c.Ray(0.5, 1).Direction.Normalize()
	angle := math.Acos(top.Dot(mathutil.Vec3{0, 0, -1}))
	if math.Abs(angle-math.Pi/4) > 1e-9 {
		t.Errorf("half-angle = %v, want π/4", angle)
	}
}

func TestRotated_YawTurnsView(t *testing.T) {
	c := Default().Rotated(90, 0)
	got := c.Ray(0.5, 0.5).Direction
	// -Z turned 90° about +Y points along -X
	if !near(got, mathutil.Vec3{-1, 0, 0}) {
		t.Errorf("direction = %v, want (-1, 0, 0)", got)
	}
	if unchanged := Default().Ray(0.5, 0.5).Direction; !near(unchanged, mathutil.Vec3{0, 0, -1}) {
		t.Errorf("Rotated mutated the source camera: %v", unchanged)
	}
}

package camera

import (
	"math"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/ray"
)

// Config describes a pinhole camera.
type Config struct {
	LookFrom mathutil.Vec3 `json:"look_from"`
	LookAt   mathutil.Vec3 `json:"look_at"`
	Up       mathutil.Vec3 `json:"up"`
	VFov     float64       `json:"vfov"` // vertical field of view, degrees
	Aspect   float64       `json:"aspect"`
}

// Camera maps viewport coordinates (u, v) in [0, 1]² to world rays.
//
// The viewport is stored as one 3×3 matrix: column 0 spans u, column 1
// spans v and column 2 holds the offset from the eye to the lower-left
// corner, so a ray direction is view × (u, v, 1).
// A Camera is immutable once built and may be shared between goroutines.
type Camera struct {
	origin mathutil.Vec3
	view   mathutil.Mat3
}

// viewport assembles the view matrix from its three columns.
func viewport(horizontal, vertical, lowerLeft mathutil.Vec3) mathutil.Mat3 {
	m := mathutil.Mat3{
		horizontal[0], vertical[0], 0,
		horizontal[1], vertical[1], 0,
		horizontal[2], vertical[2], 0,
	}
	m.Translate(lowerLeft[0], lowerLeft[1], lowerLeft[2])
	return m
}

// Default is the classic 2:1 viewport at the origin looking down -Z.
func Default() *Camera {
	return &Camera{
		view: viewport(
			mathutil.Vec3{4, 0, 0},
			mathutil.Vec3{0, 2, 0},
			mathutil.Vec3{-2, -1, -1},
		),
	}
}

// New builds a look-at camera.
func New(cfg Config) *Camera {
	if cfg.Up == (mathutil.Vec3{}) {
		cfg.Up = mathutil.Vec3{0, 1, 0}
	}
	if cfg.VFov <= 0 {
		cfg.VFov = 90
	}
	if cfg.Aspect <= 0 {
		cfg.Aspect = 2
	}

	h := math.Tan(mathutil.Deg2Rad(cfg.VFov) / 2)
	viewportH := 2 * h
	viewportW := viewportH * cfg.Aspect

	w := cfg.LookFrom.Sub(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Scale(viewportW)
	vertical := v.Scale(viewportH)
	lowerLeft := horizontal.Scale(-0.5).Sub(vertical.Scale(0.5)).Sub(w)

	return &Camera{
		origin: cfg.LookFrom,
		view:   viewport(horizontal, vertical, lowerLeft),
	}
}

// Rotated returns a copy turned by yaw (around Y) then pitch (around X),
// in degrees, about the eye point.
func (c *Camera) Rotated(yawDeg, pitchDeg float64) *Camera {
	return &Camera{
		origin: c.origin,
		view:   mathutil.Mat3Mul(mathutil.YawPitch(yawDeg, pitchDeg), c.view),
	}
}

// Origin returns the eye point.
func (c *Camera) Origin() mathutil.Vec3 {
	return c.origin
}

// Ray returns the ray through viewport point (u, v).
func (c *Camera) Ray(u, v float64) ray.Ray {
	return ray.Ray{
		Origin:    c.origin,
		Direction: c.view.MulVec3(mathutil.Vec3{u, v, 1}),
	}
}

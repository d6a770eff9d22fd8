package scene

import (
	"image"
	"math"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/ray"
	"raycast-renderer/internal/texture"
)

// Sphere is an analytic sphere.
type Sphere struct {
	Center mathutil.Vec3 `json:"center"`
	Radius float64       `json:"radius"`
}

// Hit returns the nearest root inside [tMin, tMax], trying the near root
// before the far one.
func (s Sphere) Hit(r ray.Ray, tMin, tMax float64) (ray.SurfaceRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return ray.SurfaceRecord{}, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return ray.SurfaceRecord{}, false
		}
	}

	p := r.At(root)
	return ray.SurfaceRecord{
		T:      root,
		Point:  p,
		Normal: p.Sub(s.Center).Scale(1 / s.Radius),
	}, true
}

// Scene is a flat list of spheres plus a background. It is never mutated
// after construction, so one *Scene can be read by every worker at once.
type Scene struct {
	Spheres []Sphere

	// Background is an optional equirectangular environment map. When nil
	// the sky gradient is used.
	Background *image.NRGBA
}

// Default returns a small sphere resting on a large ground sphere.
func Default() *Scene {
	return &Scene{
		Spheres: []Sphere{
			{Center: mathutil.Vec3{0, 0, -1}, Radius: 0.5},
			{Center: mathutil.Vec3{0, -100.5, -1}, Radius: 100},
		},
	}
}

// Hit returns the closest sphere hit in [tMin, tMax].
func (s *Scene) Hit(r ray.Ray, tMin, tMax float64) (ray.SurfaceRecord, bool) {
	var best ray.SurfaceRecord
	found := false
	closest := tMax
	for _, sp := range s.Spheres {
		if rec, ok := sp.Hit(r, tMin, closest); ok {
			best, found, closest = rec, true, rec.T
		}
	}
	return best, found
}

// BackgroundColor is the color seen along dir when nothing is hit.
func (s *Scene) BackgroundColor(dir mathutil.Vec3) mathutil.Color {
	if s.Background != nil {
		return texture.Equirect(s.Background, dir)
	}
	return ray.Sky(dir)
}

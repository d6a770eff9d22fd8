package ray

import "raycast-renderer/internal/mathutil"

// XYZer is anything that exposes three named components.
type XYZer interface {
	X() float64
	Y() float64
	Z() float64
}

// Ray is the parametric line Origin + t·Direction.
// Direction is not required to be unit length.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
}

// New copies origin and direction component by component.
func New(o, d XYZer) Ray {
	return Ray{
		Origin:    mathutil.Vec3{o.X(), o.Y(), o.Z()},
		Direction: mathutil.Vec3{d.X(), d.Y(), d.Z()},
	}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// SurfaceRecord describes a hit found by a scene.
type SurfaceRecord struct {
	T      float64
	Point  mathutil.Vec3
	Normal mathutil.Vec3 // unit length, outward
}

// Color shades a scene hit by visualising its normal.
// This is the shading path used by pool workers; Trace is separate.
func (r Ray) Color(rec SurfaceRecord) mathutil.Color {
	return normalColor(rec.Normal)
}

// normalColor remaps each component of n from [-1, 1] to [0, 1].
func normalColor(n mathutil.Vec3) mathutil.Color {
	return mathutil.Color{0.5 * (n[0] + 1), 0.5 * (n[1] + 1), 0.5 * (n[2] + 1)}
}

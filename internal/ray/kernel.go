package ray

import (
	"math"

	"raycast-renderer/internal/mathutil"
)

// kernelRadius is the radius of the built-in sphere used by Trace.
const kernelRadius = 0.5

var (
	kernelCenter = mathutil.Vec3{0.25, 0, -2}

	// normalOrigin is the point normals are measured from in Trace.
	// It is not the sphere center.
	normalOrigin = mathutil.Vec3{0, 0, -1}

	white = mathutil.Color{1, 1, 1}
	blue  = mathutil.Color{0, 0, 1}
)

// HitSphere solves |O + tD - C|² = r² in closed form.
//
// Only the near root (-b - √disc) / 2a is returned and t is not checked for
// positivity, so a sphere behind the ray origin is still reported as a hit.
func HitSphere(center mathutil.Vec3, radius float64, r Ray) (float64, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	return (-b - math.Sqrt(disc)) / (2 * a), true
}

// KernelSphere returns the center and radius of the built-in sphere.
// The center is returned by value; the sphere itself cannot be moved.
func KernelSphere() (center mathutil.Vec3, radius float64) {
	return kernelCenter, kernelRadius
}

// HitKernel tests r against the built-in sphere.
func (r Ray) HitKernel() (float64, bool) {
	return HitSphere(kernelCenter, kernelRadius, r)
}

// Trace shades the ray against the built-in sphere: normal visualisation on
// a hit, the sky gradient otherwise.
func (r Ray) Trace() mathutil.Color {
	if t, ok := r.HitKernel(); ok {
		n := r.At(t).Sub(normalOrigin).Normalize()
		return normalColor(n)
	}
	return Sky(r.Direction)
}

// Sky blends white into blue by the vertical component of dir.
// dir must not be the zero vector.
func Sky(dir mathutil.Vec3) mathutil.Color {
	t := 0.5 * (dir.Normalize().Y() + 1)
	return white.Scale(1 - t).Add(blue.Scale(t))
}

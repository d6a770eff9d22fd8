package pool

import (
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/ray"
)

// Camera turns viewport coordinates into a world-space ray.
// Implementations are shared by every worker and must not be mutated while
// a pool is using them.
type Camera interface {
	Ray(u, v float64) ray.Ray
}

// Scene returns the nearest hit in [tMin, tMax]. Shared read-only, like Camera.
type Scene interface {
	Hit(r ray.Ray, tMin, tMax float64) (ray.SurfaceRecord, bool)
}

// Job is one pixel's ray-cast request.
type Job struct {
	Row, Col int
	U, V     float64
	Camera   Camera
	Scene    Scene

	// Done marks the termination sentinel. A sentinel carries no payload.
	Done bool
}

// NewJob builds a work job for pixel (row, col).
func NewJob(row, col int, u, v float64, cam Camera, scn Scene) Job {
	return Job{Row: row, Col: col, U: u, V: v, Camera: cam, Scene: scn}
}

// StopJob returns the termination sentinel.
func StopJob() Job {
	return Job{Done: true}
}

// Result is produced only for jobs whose ray hit something.
type Result struct {
	Row, Col int
	Color    mathutil.Color
}

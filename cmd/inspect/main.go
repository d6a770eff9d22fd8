package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/pool"
	"raycast-renderer/internal/scene"
)

// inspect prints a scene summary and casts a single viewport ray through
// both shading paths.
func main() {
	u := flag.Float64("u", 0.5, "Viewport u in [0, 1]")
	v := flag.Float64("v", 0.5, "Viewport v in [0, 1]")
	flag.Parse()

	scn, cam := scene.Default(), camera.Default()
	if flag.NArg() > 0 {
		var err error
		scn, cam, err = scene.Load(flag.Arg(0))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Spheres: %d, Background: %v\n", len(scn.Spheres), scn.Background != nil)
	for i, s := range scn.Spheres {
		fmt.Printf("  Sphere[%d]: center=(%.3f, %.3f, %.3f) radius=%.3f\n", i, s.Center[0], s.Center[1], s.Center[2], s.Radius)
	}

	r := cam.Ray(*u, *v)
	fmt.Printf("Ray(%.3f, %.3f): origin=%v direction=%v\n", *u, *v, r.Origin, r.Direction)

	if rec, ok := scn.Hit(r, 0, pool.DefaultTMax); ok {
		fmt.Printf("  Scene:  hit t=%.4f point=%v normal=%v color=%v\n", rec.T, rec.Point, rec.Normal, r.Color(rec))
	} else {
		fmt.Printf("  Scene:  miss, background=%v\n", scn.BackgroundColor(r.Direction))
	}

	if t, ok := r.HitKernel(); ok {
		note := ""
		if t < 0 {
			note = " (behind origin)"
		}
		fmt.Printf("  Kernel: hit t=%.4f%s color=%v\n", t, note, r.Trace())
	} else {
		fmt.Printf("  Kernel: miss, sky=%v\n", r.Trace())
	}

	if l := r.Direction.Len(); l == 0 || math.IsNaN(l) {
		fmt.Println("  Warning: zero-length direction, normalized values are NaN")
	}
}

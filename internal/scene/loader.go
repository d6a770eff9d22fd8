package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/texture"
)

// File is the on-disk JSON scene description.
type File struct {
	Camera     *camera.Config `json:"camera"`
	Spheres    []Sphere       `json:"spheres"`
	Background string         `json:"background"` // image path, relative to the scene file
}

// Load reads a JSON scene file and builds the scene and its camera.
// A file without a camera gets camera.Default().
func Load(path string) (*Scene, *camera.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	for i, sp := range f.Spheres {
		if sp.Radius <= 0 {
			return nil, nil, fmt.Errorf("scene: %s: sphere %d has radius %g", path, i, sp.Radius)
		}
	}

	s := &Scene{Spheres: f.Spheres}
	if f.Background != "" {
		bg := f.Background
		if !filepath.IsAbs(bg) {
			bg = filepath.Join(filepath.Dir(path), bg)
		}
		img, err := texture.Load(bg)
		if err != nil {
			return nil, nil, fmt.Errorf("scene: background: %w", err)
		}
		s.Background = img
	}

	cam := camera.Default()
	if f.Camera != nil {
		cam = camera.New(*f.Camera)
	}
	return s, cam, nil
}

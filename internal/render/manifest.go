package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest is the JSON sidecar written next to a render.
type Manifest struct {
	Image       string `json:"image"`
	Format      string `json:"format"`
	Scene       string `json:"scene,omitempty"`
	Mode        string `json:"mode"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	Submitted   int    `json:"submitted"`
	Hits        int    `json:"hits"`
	Misses      int    `json:"misses"`
	Failed      int    `json:"failed"`
	ElapsedMS   int64  `json:"elapsed_ms"`
	Host        string `json:"host,omitempty"`
}

// NewManifest fills a manifest from render options and stats.
func NewManifest(image, format string, opts Options, stats Stats) Manifest {
	return Manifest{
		Image:       image,
		Format:      format,
		Mode:        stats.Mode,
		Width:       opts.Width,
		Height:      opts.Height,
		Supersample: opts.Supersample,
		Workers:     stats.Workers,
		Submitted:   stats.Submitted,
		Hits:        stats.Hits,
		Misses:      stats.Misses,
		Failed:      stats.Failed,
		ElapsedMS:   stats.Elapsed.Milliseconds(),
	}
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("render: mkdir %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0644)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"raycast-renderer/internal/imageio"
	"raycast-renderer/internal/render"
	"raycast-renderer/internal/sysinfo"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	ScenePath    string `json:"scene"`
	OutputPath   string `json:"output"`
	ManifestPath string `json:"manifest"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	Mode        string  `json:"mode"`
	Format      string  `json:"format"`
	Gamma       float64 `json:"gamma"`
	Exposure    float64 `json:"exposure"`
	ACES        bool    `json:"aces"`
	Yaw         float64 `json:"yaw"`
	Pitch       float64 `json:"pitch"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Paths in the file are relative to the file
	base := filepath.Dir(path)
	for _, p := range []*string{&cfg.ScenePath, &cfg.OutputPath, &cfg.ManifestPath} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ScenePath    string
	OutputPath   string
	ManifestPath string
	Width        int
	Height       int
	Supersample  int
	Workers      int
	Mode         string
	Format       string
	Yaw          float64
	Pitch        float64
}

// Resolve applies CLI overrides and fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.ScenePath != "" {
		c.ScenePath = flags.ScenePath
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if flags.ManifestPath != "" {
		c.ManifestPath = flags.ManifestPath
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Yaw != 0 {
		c.Yaw = flags.Yaw
	}
	if flags.Pitch != 0 {
		c.Pitch = flags.Pitch
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 400
	}
	if c.Height <= 0 {
		c.Height = 200
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = sysinfo.LogicalCPUs()
	}
	c.Mode = strings.ToLower(c.Mode)
	if c.Mode == "" {
		c.Mode = render.ModeScene
	}
	if c.OutputPath == "" {
		c.OutputPath = filepath.Join("output", "render.webp")
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = imageio.FormatFromPath(c.OutputPath)
	}
	if c.Gamma <= 0 {
		c.Gamma = 2.2
	}
	if c.Exposure <= 0 {
		c.Exposure = 1
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	switch c.Mode {
	case render.ModeScene, render.ModeKernel:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	switch c.Format {
	case imageio.WebP, imageio.TGA, imageio.PNG:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("config: image must be at least 2x2, got %dx%d", c.Width, c.Height)
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/config"
	"raycast-renderer/internal/imageio"
	"raycast-renderer/internal/logging"
	"raycast-renderer/internal/raster"
	"raycast-renderer/internal/render"
	"raycast-renderer/internal/scene"
	"raycast-renderer/internal/sysinfo"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Scene JSON file (default: built-in scene)")
	output := flag.String("output", "", "Output image (default: output/render.webp)")
	manifest := flag.String("manifest", "", "Write a JSON manifest to this path")
	width := flag.Int("width", 0, "Image width (default: 400)")
	height := flag.Int("height", 0, "Image height (default: 200)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: logical CPUs)")
	mode := flag.String("mode", "", "Render mode: 'scene' or 'kernel'")
	format := flag.String("format", "", "Output format: webp, tga or png (default: from extension)")
	yaw := flag.Float64("yaw", 0, "Camera yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Camera pitch in degrees")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ScenePath:    *scenePath,
		OutputPath:   *output,
		ManifestPath: *manifest,
		Width:        *width,
		Height:       *height,
		Supersample:  *supersample,
		Workers:      *workers,
		Mode:         *mode,
		Format:       *format,
		Yaw:          *yaw,
		Pitch:        *pitch,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load scene
	scn, cam := scene.Default(), camera.Default()
	if cfg.ScenePath != "" {
		var err error
		scn, cam, err = scene.Load(cfg.ScenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.Yaw != 0 || cfg.Pitch != 0 {
		cam = cam.Rotated(cfg.Yaw, cfg.Pitch)
	}

	host, err := sysinfo.Probe()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Print summary
	sceneName := "built-in"
	if cfg.ScenePath != "" {
		sceneName = cfg.ScenePath
	}
	fmt.Printf("Ray-cast renderer (%s mode)\n", cfg.Mode)
	fmt.Printf("Host: %s\n", host)
	fmt.Printf("Scene: %s, %d spheres\n", sceneName, len(scn.Spheres))
	fmt.Printf("Size: %dx%d x%d, Workers: %d\n", cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputPath)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := render.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Mode:        cfg.Mode,
		Logger:      logging.Stdout(),
	}
	fb, stats, err := render.Render(ctx, opts, cam, scn)
	if fb == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs\n", stats.Elapsed.Seconds())
	fmt.Printf("Rays: %d submitted, %d hit, %d missed\n", stats.Submitted, stats.Hits, stats.Misses)
	if stats.Failed > 0 {
		fmt.Printf("Failed: %d jobs not delivered\n", stats.Failed)
	}

	img := render.Finish(fb, opts, raster.ToneConfig{
		Exposure: cfg.Exposure,
		ACES:     cfg.ACES,
		Gamma:    cfg.Gamma,
	})
	if saveErr := imageio.Save(cfg.OutputPath, img, cfg.Format); saveErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", saveErr)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", cfg.OutputPath)

	// Write manifest
	if cfg.ManifestPath != "" {
		m := render.NewManifest(cfg.OutputPath, cfg.Format, opts, stats)
		m.Scene = cfg.ScenePath
		m.Host = host.String()
		if err := render.WriteManifest(cfg.ManifestPath, m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", cfg.ManifestPath)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

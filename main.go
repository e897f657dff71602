package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"particlehero/app"
	"particlehero/hal"
	"particlehero/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	var headless hal.HeadlessConfig
	var window hal.WindowConfig
	var tui bool
	var version bool

	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&tui, "tui", false, "Render as braille in the terminal.")
	flag.IntVar(&window.Width, "width", 960, "Window width in logical pixels (headless: device pixels).")
	flag.IntVar(&window.Height, "height", 540, "Window height in logical pixels (headless: device pixels).")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")

	flag.StringVar(&cfg.Text, "text", cfg.Text, "Text to render.")
	flag.StringVar(&cfg.Typeface, "typeface", cfg.Typeface, "Typeface: gobold or proggy.")
	flag.Float64Var(&cfg.DensityScale, "density", cfg.DensityScale, "Sampling density multiplier.")
	flag.Float64Var(&cfg.SizeScale, "size", cfg.SizeScale, "Particle size multiplier.")
	flag.Float64Var(&cfg.ExtrusionDepth, "depth", cfg.ExtrusionDepth, "Extrusion depth of the text.")
	flag.Float64Var(&cfg.RepelRadius, "repel-radius", cfg.RepelRadius, "Pointer repulsion radius in device pixels.")
	flag.Float64Var(&cfg.RepelForce, "repel-force", cfg.RepelForce, "Pointer repulsion strength.")
	flag.BoolVar(&cfg.Shade, "shade", cfg.Shade, "Darken face-layer particles.")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the status overlay.")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based).")
	flag.Parse()

	if version {
		fmt.Println("particlehero", buildinfo.String())
		return
	}

	newApp := app.Factory(cfg)

	switch {
	case headless.Enabled:
		headless.Width, headless.Height = window.Width, window.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case tui:
		if err := hal.RunTerminal(newApp, hal.TerminalConfig{}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		if err := hal.RunWindow(newApp, window); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// Command curvedesk is the desktop curve editor.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/integration/ebitenwin"
	"github.com/gogpu/curvekit/internal/config"
)

func main() {
	hud := flag.Bool("hud", true, "show the selection summary")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	curvekit.SetLogger(logger)

	// HarfBuzz-level shaping for the HUD labels.
	text.SetShaper(text.NewGoTextShaper())
	defer text.SetShaper(nil)

	w, err := ebitenwin.New(ebitenwin.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Seed:       cfg.Seed,
		HUD:        *hud,
	})
	if err != nil {
		slog.Error("create window", "error", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := ebitenwin.Run(w, "curvekit"); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}

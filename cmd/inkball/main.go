package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/inkball/assets"
	"github.com/plus3/inkball/inkball"
)

const (
	TopBarHeight = 64
	ScreenWidth  = inkball.BoardWidth
	ScreenHeight = inkball.BoardHeight + TopBarHeight
)

func main() {
	configPath := flag.String("config", "", "Path to a config file. Defaults to the embedded config.")
	seed := flag.Uint64("seed", 0, "Seed for every level's random source. Zero picks one from the clock.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg, layouts, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	for _, key := range cfg.Undecoded {
		log.Printf("Ignoring unknown config key %q", key)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting inkball with seed %d", *seed)

	session, err := inkball.NewSession(cfg, layouts, inkball.WithSeed(*seed))
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	game := NewGame(session, *debug)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Inkball")
	ebiten.SetTPS(inkball.FrameRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

func loadConfig(path string) (*inkball.Config, fs.FS, error) {
	if path == "" {
		cfg, err := inkball.LoadConfig(assets.FS, assets.ConfigFile)
		return cfg, assets.FS, err
	}

	dir := os.DirFS(filepath.Dir(path))
	cfg, err := inkball.LoadConfig(dir, filepath.Base(path))
	return cfg, dir, err
}

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/plus3/inkball/assets"
	"github.com/plus3/inkball/inkball"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file. Defaults to the embedded config.")
	seed := flag.Uint64("seed", 1, "Seed for every level's random source.")
	frames := flag.Int("frames", 30*60*10, "Maximum number of frames to simulate.")
	printConfig := flag.Bool("print-config", false, "Print the resolved config as TOML and exit.")
	flag.Parse()

	cfg, layouts, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	for _, key := range cfg.Undecoded {
		log.Printf("Ignoring unknown config key %q", key)
	}

	if *printConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			log.Fatalf("Failed to encode config: %v", err)
		}
		return
	}

	session, err := inkball.NewSession(cfg, layouts, inkball.WithSeed(*seed))
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	report := &Report{
		Seed:      *seed,
		MaxFrames: *frames,
		Levels:    session.LevelCount(),
		Events:    make(map[string]int),
	}
	for _, kind := range inkball.EventKinds() {
		report.Events[kind.String()] = 0
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	log.Printf("Simulating up to %d frames with seed %d...\n", *frames, *seed)

	startTime := time.Now()
	level := session.Level()
	for report.Frames < *frames && session.State() != inkball.Finished && !session.TimeUp() {
		tick := level.Tick()

		updateStart := time.Now()
		session.Update(inkball.FrameDuration)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.Frames++

		if level.Tick() != tick {
			for _, ev := range level.Events() {
				report.Events[ev.Kind.String()]++
			}
		}

		if next := session.Level(); next != level {
			report.AddLevel(level)
			level = next
		}
	}
	report.AddLevel(level)

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.State = session.State().String()
	report.TimeUp = session.TimeUp()
	report.LevelIndex = session.LevelIndex()
	report.Score = session.Score()

	fmt.Println("--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// loadConfig reads the config at path, resolving layouts against its
// directory, or the embedded defaults when path is empty.
func loadConfig(path string) (*inkball.Config, fs.FS, error) {
	if path == "" {
		cfg, err := inkball.LoadConfig(assets.FS, assets.ConfigFile)
		return cfg, assets.FS, err
	}

	dir := os.DirFS(filepath.Dir(path))
	cfg, err := inkball.LoadConfig(dir, filepath.Base(path))
	return cfg, dir, err
}

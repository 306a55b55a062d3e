package main

import (
	"flag"
	"fmt"

	"mazehunt/internal/game"
)

func main() {
	var ticks int
	var reportEvery int
	var configPath string
	var auto bool

	flag.IntVar(&ticks, "ticks", 3600, "ticks to simulate (60 per second)")
	flag.IntVar(&reportEvery, "report-every", 600, "ticks between progress lines (0 = final only)")
	flag.StringVar(&configPath, "config", "", "YAML settings file")
	flag.BoolVar(&auto, "auto", true, "drive the player with continuous autopilot replanning")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	settings := game.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = game.LoadSettings(configPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	opts := []game.SimOption{game.WithSettings(settings)}
	if auto {
		opts = append(opts, game.WithAutoReplan())
	}
	ts := game.NewTestSim(opts...)
	startPellets := ts.Session.Maze().PelletCount()

	fmt.Printf("=== Headless Maze Run ===\n")
	fmt.Printf("ticks=%d auto=%v pellets=%d lives=%d\n\n", ticks, auto, startPellets, ts.Session.Lives())

	for done := 0; done < ticks; {
		step := ticks - done
		if reportEvery > 0 && step > reportEvery {
			step = reportEvery
		}
		ts.RunTicks(step)
		done += step
		printProgress(ts)
		if ts.Session.Over() || ts.Session.Maze().PelletCount() == 0 {
			break
		}
	}

	s := ts.Session
	eaten := startPellets - s.Maze().PelletCount()
	fmt.Printf("\n=== Summary ===\n")
	fmt.Printf("ticks=%d score=%d lives=%d pellets_eaten=%d/%d over=%v\n",
		s.Tick(), s.Score(), s.Lives(), eaten, startPellets, s.Over())
}

func printProgress(ts *game.TestSim) {
	s := ts.Session
	fmt.Printf("tick=%-6d score=%-6d lives=%d pellets=%-4d", s.Tick(), s.Score(), s.Lives(), s.Maze().PelletCount())
	for _, g := range s.Ghosts() {
		fmt.Printf("  %s=%s", g.Name(), g.Mode())
	}
	fmt.Println()
}

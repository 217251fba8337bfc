package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/dashshot/game"
)

type simOptions struct {
	Frames       int
	Seed         uint64
	Width        int
	Height       int
	DashDistance int
}

func main() {
	opts := simOptions{}
	flag.IntVar(&opts.Frames, "frames", 60*60, "Number of frames to simulate.")
	flag.Uint64Var(&opts.Seed, "seed", 1, "Enemy placement seed; 0 picks one at random.")
	flag.IntVar(&opts.Width, "width", 1280, "Play field width.")
	flag.IntVar(&opts.Height, "height", 720, "Play field height.")
	flag.IntVar(&opts.DashDistance, "dash-distance", 300, "Horizontal gap beyond which the autopilot dashes; 0 disables dashing.")
	flag.Parse()

	if opts.Frames <= 0 || opts.Width <= 0 || opts.Height <= 0 {
		log.Fatalf("Frames, width and height must be positive")
	}

	log.Printf("Simulating %d frames on a %dx%d field...\n", opts.Frames, opts.Width, opts.Height)
	report := simulate(opts)
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// simulate runs the world on a virtual clock: frame n happens at
// n*FrameTime regardless of how long the update took.
func simulate(opts simOptions) *Report {
	world := game.NewWorld(game.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Seed:   opts.Seed,
	})
	pilot := game.Autopilot{DashDistance: opts.DashDistance}

	report := &Report{
		Options: opts,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, opts.Frames),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	startTime := time.Now()
	for frame := range opts.Frames {
		in := pilot.Input(world, time.Duration(frame)*game.FrameTime)

		updateStart := time.Now()
		world.Update(in)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

		if world.State().GameOver {
			report.GameOvers++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.GameTime = time.Duration(opts.Frames) * game.FrameTime
	report.UpdateTime.Finalize()
	report.Tally = world.Tally()
	report.Final = world.State()
	report.Systems = world.UpdateStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}

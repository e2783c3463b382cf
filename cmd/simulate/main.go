package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/playmatatu/poolsim/internal/config"
	"github.com/playmatatu/poolsim/internal/physics"
)

func main() {
	vx := flag.Float64("vx", 15, "cue ball x velocity (mm/s)")
	vy := flag.Float64("vy", -2500, "cue ball y velocity (mm/s)")
	physicsPath := flag.String("physics", "", "YAML file with table constants")
	maxSegments := flag.Int("max-segments", 5000, "stop after this many segments")
	interval := flag.Float64("frames", 0, "also print frames sampled every N seconds")
	asJSON := flag.Bool("json", false, "print the final table as JSON")
	quiet := flag.Bool("quiet", false, "print events only")
	flag.Parse()

	params, err := config.LoadPhysics(*physicsPath)
	if err != nil {
		log.Fatalf("Failed to load physics config: %v", err)
	}

	start := physics.NewRackedTable(params)
	if err := start.Strike(physics.CueBall, physics.NewVec2(*vx, *vy)); err != nil {
		log.Fatalf("Failed to strike cue ball: %v", err)
	}
	if !*quiet {
		fmt.Println(start)
	}

	segments, events, err := physics.Simulate(start, *maxSegments)
	if err != nil && !errors.Is(err, physics.ErrSegmentLimit) {
		log.Fatalf("Simulation failed: %v", err)
	}
	for i, seg := range segments {
		fmt.Printf("#%d %s\n", i+1, events[i])
		if !*quiet {
			fmt.Println(seg)
		}
	}
	if errors.Is(err, physics.ErrSegmentLimit) {
		fmt.Printf("stopped after %d segments, %d balls still rolling\n", len(segments), segments[len(segments)-1].Rolling())
	}

	final := start
	if len(segments) > 0 {
		final = segments[len(segments)-1]
	}

	if *interval > 0 {
		frames := physics.Frames(start, segments, *interval)
		fmt.Printf("%d frames at %gs\n", len(frames), *interval)
		for _, f := range frames {
			fmt.Printf("t=%.3f rolling=%d\n", f.Time, f.Rolling())
		}
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(final.Snapshot()); err != nil {
			log.Fatalf("Failed to encode table: %v", err)
		}
		return
	}
	fmt.Printf("%d segments, %d balls left, t=%.4f\n", len(segments), final.Balls(), final.Time)
}

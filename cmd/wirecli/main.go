package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"crosswarped.com/wires"
	"crosswarped.com/wires/pkg/export"
	"crosswarped.com/wires/pkg/primitives"
)

func main() {

	file := flag.String("file", "", "The file to load wire definitions from (default stdin)")
	input := flag.String("input", "", "Inline wire definitions, separated by ';' or newlines")
	showIntersections := flag.Bool("intersections", false, "Print every intersection")
	atStep := flag.Int("at", -1, "Print where each wire is, and the intersections reached, after this many steps")
	geojsonFile := flag.String("geojson", "", "Write a GeoJSON export of the wires to this file")
	debug := flag.Bool("debug", false, "Print debug representations")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *file != "" && *input != "" {
		fmt.Println("Cannot use both -file and -input")
		os.Exit(1)
	}

	text, err := loadInput(*file, *input)
	if err != nil {
		fmt.Println("Error loading input:", err)
		os.Exit(1)
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	puzzle := wires.NewPuzzle(text)

	fmt.Println("Wires:", len(puzzle.Wires()))
	if len(puzzle.Wires()) > 2 {
		fmt.Println("Only the first two wires are compared")
	}
	fmt.Println("Intersections:", len(puzzle.Intersections()))
	if *debug {
		fmt.Println(puzzle.DebugString())
	}

	if *showIntersections {
		fmt.Println("--------------------------------")
		for _, i := range puzzle.Intersections() {
			if *debug {
				fmt.Println(i.DebugString())
				continue
			}
			fmt.Println(i.Repr())
		}
	}

	if *atStep >= 0 {
		fmt.Println("--------------------------------")
		printProgress(puzzle, *atStep)
	}

	fmt.Println("--------------------------------")
	fmt.Println(puzzle.Repr())

	if *geojsonFile != "" {
		if err := writeGeoJSON(puzzle, *geojsonFile); err != nil {
			fmt.Println("Error writing GeoJSON:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote GeoJSON to", *geojsonFile)
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func loadInput(path, inline string) (string, error) {
	if inline != "" {
		return strings.ReplaceAll(inline, ";", "\n"), nil
	}

	r := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func printProgress(puzzle *wires.Puzzle, step int) {
	fmt.Printf("Step %d of %d\n", step, puzzle.Endstep())
	for i := range puzzle.Wires() {
		pos, err := puzzle.WirePositionAt(i, step)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Printf("Wire %d at %v\n", i, pos)
	}
	for _, i := range puzzle.IntersectionsReachedBy(step) {
		if i.Point.Equals(primitives.Origin) {
			continue
		}
		fmt.Println("Reached", i.Repr())
	}
}

func writeGeoJSON(puzzle *wires.Puzzle, path string) error {
	b, err := export.MarshalGeoJSON(puzzle)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

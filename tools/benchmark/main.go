// Command benchmark solves every .mdl fixture in a directory, inverts
// the resulting trace, and reports assembly energy/steps/peak fleet size
// and inversion runtime/tick count to a CSV file, with a console summary
// of a subset of those columns.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/elektrokombinacija/nanoforge/internal/assemble"
	"github.com/elektrokombinacija/nanoforge/internal/invert"
	"github.com/elektrokombinacija/nanoforge/internal/modelfile"
)

type result struct {
	Fixture        string
	Resolution     int
	ModelVoxels    int
	SolveRuntimeMs float64
	AssembleSteps  int
	AssembleEnergy int
	PeakFleet      int
	InvertRuntime  float64
	InvertTicks    int
	Err            string
}

func runFixture(path string) result {
	res := result{Fixture: filepath.Base(path)}

	buf, err := os.ReadFile(path)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	grid, err := modelfile.Load(buf)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Resolution = grid.R
	res.ModelVoxels = grid.ModelCount()

	start := time.Now()
	trace, metrics, err := assemble.New(grid).Solve()
	res.SolveRuntimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.AssembleSteps = metrics.StepsExecuted
	res.AssembleEnergy = metrics.Energy
	res.PeakFleet = metrics.PeakFleetSize

	start = time.Now()
	inverted, err := invert.Invert(trace, false)
	res.InvertRuntime = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.InvertTicks = len(inverted)

	return res
}

func writeCSV(results []result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"fixture", "resolution", "model_voxels",
		"solve_runtime_ms", "assemble_steps", "assemble_energy", "peak_fleet",
		"invert_runtime_ms", "invert_ticks", "error",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Fixture, fmt.Sprintf("%d", r.Resolution), fmt.Sprintf("%d", r.ModelVoxels),
			fmt.Sprintf("%.3f", r.SolveRuntimeMs), fmt.Sprintf("%d", r.AssembleSteps),
			fmt.Sprintf("%d", r.AssembleEnergy), fmt.Sprintf("%d", r.PeakFleet),
			fmt.Sprintf("%.3f", r.InvertRuntime), fmt.Sprintf("%d", r.InvertTicks), r.Err,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []result) {
	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-28s %6s %10s %10s %10s %10s %8s\n",
		"Fixture", "R", "Voxels", "SolveMs", "Energy", "InvertMs", "Status")
	fmt.Println(strings.Repeat("-", 90))
	for _, r := range results {
		status := "ok"
		if r.Err != "" {
			status = "FAIL"
		}
		fmt.Printf("%-28s %6d %10d %10.2f %10d %10.2f %8s\n",
			r.Fixture, r.Resolution, r.ModelVoxels, r.SolveRuntimeMs, r.AssembleEnergy, r.InvertRuntime, status)
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "directory of .mdl fixtures")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "output CSV file")
	flag.Parse()

	entries, err := os.ReadDir(*inputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: reading %s: %v\n", *inputDir, err)
		os.Exit(1)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".mdl") {
			paths = append(paths, filepath.Join(*inputDir, e.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "benchmark: no .mdl fixtures found in %s\n", *inputDir)
		os.Exit(1)
	}

	var results []result
	for _, p := range paths {
		results = append(results, runFixture(p))
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	printSummary(results)
}

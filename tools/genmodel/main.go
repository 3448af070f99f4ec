// Command genmodel produces synthetic .mdl fixtures for exercising the
// solver without a real contest problem set: spheres, columns, hollow
// shells and random scatters over a configurable resolution.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/modelfile"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

type shapeFunc func(r int, rng *rand.Rand) *voxel.Grid

var shapes = map[string]shapeFunc{
	"sphere": genSphere,
	"column": genColumn,
	"shell":  genShell,
	"random": genRandom,
}

func genSphere(r int, _ *rand.Rand) *voxel.Grid {
	g := voxel.New(r)
	center := float64(r-1) / 2
	radius := float64(r) / 2.5
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			for z := 0; z < r; z++ {
				dx, dy, dz := float64(x)-center, float64(y)-center, float64(z)-center
				if math.Sqrt(dx*dx+dy*dy+dz*dz) <= radius {
					_ = g.SetModel(geom.Coord{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return g
}

func genColumn(r int, _ *rand.Rand) *voxel.Grid {
	g := voxel.New(r)
	cx, cz := r/2, r/2
	for y := 0; y < r; y++ {
		_ = g.SetModel(geom.Coord{X: cx, Y: y, Z: cz})
	}
	return g
}

func genShell(r int, _ *rand.Rand) *voxel.Grid {
	g := voxel.New(r)
	center := float64(r-1) / 2
	outer := float64(r) / 2.5
	inner := outer - 1.5
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			for z := 0; z < r; z++ {
				dx, dy, dz := float64(x)-center, float64(y)-center, float64(z)-center
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if d <= outer && d >= inner {
					_ = g.SetModel(geom.Coord{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return g
}

func genRandom(r int, rng *rand.Rand) *voxel.Grid {
	g := voxel.New(r)
	n := r * r * r / 10
	for i := 0; i < n; i++ {
		c := geom.Coord{X: rng.Intn(r), Y: rng.Intn(r), Z: rng.Intn(r)}
		_ = g.SetModel(c)
	}
	return g
}

func main() {
	shape := flag.String("shape", "sphere", "shape to generate: sphere, column, shell, random")
	resolution := flag.Int("r", 20, "grid resolution (cube side length)")
	seed := flag.Int64("seed", 42, "random seed, used by the random shape")
	outDir := flag.String("output", "testdata", "output directory")
	flag.Parse()

	gen, ok := shapes[*shape]
	if !ok {
		fmt.Fprintf(os.Stderr, "genmodel: unknown shape %q (want one of sphere, column, shell, random)\n", *shape)
		os.Exit(2)
	}
	if *resolution <= 0 {
		fmt.Fprintln(os.Stderr, "genmodel: -r must be positive")
		os.Exit(2)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "genmodel: creating output directory: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	grid := gen(*resolution, rng)

	name := fmt.Sprintf("%s_r%d_seed%d.mdl", *shape, *resolution, *seed)
	path := filepath.Join(*outDir, name)
	if err := os.WriteFile(path, modelfile.Save(grid), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "genmodel: writing %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("generated: %s (%s, r=%d, %d model voxels)\n", path, *shape, *resolution, grid.ModelCount())
}

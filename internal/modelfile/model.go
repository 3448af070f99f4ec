package modelfile

import (
	"fmt"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

// Load decodes buf as a .mdl file and returns a grid with MODEL bits set.
func Load(buf []byte) (*voxel.Grid, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyFile
	}
	r := int(buf[0])
	if r <= 0 {
		return nil, ErrInvalidR
	}

	nbits := r * r * r
	nbytes := (nbits + 7) / 8
	if len(buf)-1 < nbytes {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, nbytes, len(buf)-1)
	}

	grid := voxel.New(r)
	bits := buf[1:]
	idx := 0
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			for z := 0; z < r; z++ {
				if bitSet(bits, idx) {
					c := geom.Coord{X: x, Y: y, Z: z}
					if err := grid.SetModel(c); err != nil {
						return nil, err
					}
				}
				idx++
			}
		}
	}
	return grid, nil
}

// Save encodes grid's MODEL bits back into .mdl format.
func Save(grid *voxel.Grid) []byte {
	r := grid.R
	nbits := r * r * r
	nbytes := (nbits + 7) / 8
	out := make([]byte, 1+nbytes)
	out[0] = byte(r)

	idx := 0
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			for z := 0; z < r; z++ {
				if grid.IsModel(geom.Coord{X: x, Y: y, Z: z}) {
					setBit(out[1:], idx)
				}
				idx++
			}
		}
	}
	return out
}

// bitSet reads bit i, little-endian within its byte.
func bitSet(bits []byte, i int) bool {
	byteIdx := i / 8
	bitIdx := uint(i % 8)
	return bits[byteIdx]&(1<<bitIdx) != 0
}

func setBit(bits []byte, i int) {
	byteIdx := i / 8
	bitIdx := uint(i % 8)
	bits[byteIdx] |= 1 << bitIdx
}

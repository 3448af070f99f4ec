package main

import (
	"fmt"
	"os"

	"github.com/elektrokombinacija/nanoforge/internal/modelfile"
	"github.com/elektrokombinacija/nanoforge/internal/tracefmt"
	"github.com/elektrokombinacija/nanoforge/internal/voxel"
)

func loadModel(path string) (*voxel.Grid, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	grid, err := modelfile.Load(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding model %s: %w", path, err)
	}
	return grid, nil
}

func loadTrace(path string) (tracefmt.Trace, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace %s: %w", path, err)
	}
	trace, err := tracefmt.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding trace %s: %w", path, err)
	}
	return trace, nil
}

func writeTrace(path string, trace tracefmt.Trace) error {
	buf := tracefmt.Encode(trace, nil)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("writing trace %s: %w", path, err)
	}
	return nil
}

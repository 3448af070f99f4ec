package voxel

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate fell outside [0,R)^3.
	ErrOutOfBounds = errors.New("voxel: coordinate out of bounds")
	// ErrAlreadyFull indicates set_full was called on a cell already FULL.
	ErrAlreadyFull = errors.New("voxel: cell is already full")
	// ErrNotFull indicates set_void was called on a cell that is not FULL.
	ErrNotFull = errors.New("voxel: cell is not full")
)

// Package modelfile reads and writes the .mdl target-model file format:
// what the grid to be assembled looks like before anything simulates it.
//
// What: Load reads a one-byte R prefix followed by ceil(R^3/8) packed
// bits (little-endian within each byte) enumerating cells in row-major
// order, y slowest, x middle, z fastest; a set bit marks a MODEL cell.
// Save is the inverse, producing a byte stream Load can read back.
//
// Why: grounded on state.py's Matrix._load_fileobj, re-expressed as a
// direct bit-index walk instead of a byte-then-bit unpack helper.
//
// Complexity: O(R^3) for both directions.
//
// Errors: ErrEmptyFile if the input has no R byte; ErrTruncated if fewer
// bytes are present than R implies.
package modelfile

// Package tracefmt defines the wire representation of a nanobot command
// trace and its NBT binary codec.
//
// What: Command is a tagged union over the twelve opcodes (Halt, Wait,
// Flip, SMove, LMove, Fission, FusionP, FusionS, Fill, Void, GFill,
// GVoid); Trace is an ordered sequence of per-tick command groups.
//
// Why: the engine, the planner, and the inverter all need to produce and
// consume the same command shape without depending on each other's
// internal op representation. The byte layout is this package's own:
// Halt, Wait and Flip use the contest's single-byte tags, but the other
// commands use package-specific tag bytes and argument packing, so an
// encoded trace round-trips through Decode and is not byte-compatible
// with the contest's NBT format.
//
// Complexity: Encode/Decode are both O(n) in the number of commands.
//
// Errors: Decode returns ErrTruncated on a short buffer and ErrBadOpcode
// on an unrecognized byte.
package tracefmt

package tracefmt

import "errors"

var (
	// ErrTruncated is returned when the buffer ends mid-command.
	ErrTruncated = errors.New("tracefmt: truncated command buffer")
	// ErrBadOpcode is returned when a byte does not match any known opcode.
	ErrBadOpcode = errors.New("tracefmt: unrecognized opcode byte")
)

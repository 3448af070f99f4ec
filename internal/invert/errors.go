package invert

import "errors"

// ErrGroupSizeMismatch is returned when a tick's command count does not
// match the number of bots alive in the discovery replay.
var ErrGroupSizeMismatch = errors.New("invert: tick command count does not match live fleet size")

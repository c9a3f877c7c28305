package life

import "errors"

var (
	// ErrInvalidCoordinate reports direct access outside [0,W)x[0,H).
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrUnknownPattern reports a Stamp call with an unregistered pattern name.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrInvalidSize reports non-positive grid dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrSnapshotSize reports a Restore with a snapshot of the wrong length.
	ErrSnapshotSize = errors.New("snapshot size mismatch")
)

package docmd

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrUnknownNode indicates a node kind the renderer does not handle.
	ErrUnknownNode = errors.New("unknown documentation node")

	// ErrNoCodeLinker indicates a LinkTag with a code destination reached an
	// emitter with no CodeLinker configured.
	ErrNoCodeLinker = errors.New("code destination link requires a CodeLinker")
)

package parameter

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the default tick, one Advance per dispatcher per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick after a stall so ballistic steps stay stable
	MaxFrameDelta = 100 * time.Millisecond

	// EventQueueSize is the input channel capacity
	EventQueueSize = 100
)

// World Projection
const (
	// CellsPerUnitX is terminal columns per world unit on the X axis
	CellsPerUnitX = 2.0

	// CellsPerUnitZ is terminal rows per world unit on the Z axis
	CellsPerUnitZ = 1.0

	// PlayerStep is world units moved per arrow key
	PlayerStep = 0.5

	// ConeStep is degrees added or removed per cone key
	ConeStep = 5.0
)

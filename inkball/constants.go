package inkball

import "time"

const (
	CellSize  = 32
	FrameRate = 30

	BoardCols   = 18
	BoardRows   = 18
	BoardWidth  = BoardCols * CellSize
	BoardHeight = BoardRows * CellSize

	BallRadius = 12.0
	BallSpeed  = 2.0

	// Holes pull balls whose center is within AttractionRange of the hole center.
	AttractionRange    = 32.0
	AttractionStrength = 0.005
	MinCaptureRadius   = 8.0

	CollisionCooldown = 5
	BrickHitLimit     = 3

	DefaultSpawnInterval = 10.0
	MinSpawnInterval     = 1.0
	SpawnIntervalDecay   = 0.1

	DefaultLevelTime = 120

	StrokePickThreshold = 10.0
	UpcomingPreview     = 5

	CompletionCadence = 67 * time.Millisecond
)

// FrameDuration is the simulated duration of one fixed-rate frame.
const FrameDuration = time.Second / FrameRate

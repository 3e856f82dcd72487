package core

// ReferenceTickRate is the frame rate that simulation speeds are expressed in.
// A velocity of 5 means 5 arena pixels per 1/60 s.
const ReferenceTickRate = 60

// RuntimeConfig contains settings a front-end passes to the simulation loop.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: ReferenceTickRate,
	}
}

// FrameDelta returns the elapsed time of one tick measured in reference frames.
// At 60 ticks per second it is exactly 1; at 30 it is 2.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return float64(ReferenceTickRate) / float64(c.TickRate)
}

package breakout

// Phase is the coarse lifecycle state of a game.
type Phase int

const (
	PhaseHome        Phase = iota // Main menu, no level loaded for play
	PhaseLevelSelect              // Choosing a level
	PhaseReady                    // Level built, ball waiting for launch
	PhasePlaying                  // Simulation running
	PhaseEnded                    // Run over, won or lost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseLevelSelect:
		return "levelSelect"
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// InMenu reports whether the phase belongs to the menu front-end rather than a
// loaded level.
func (p Phase) InMenu() bool {
	return p == PhaseHome || p == PhaseLevelSelect
}

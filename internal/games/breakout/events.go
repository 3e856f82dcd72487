package breakout

import "fmt"

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventHit            EventKind = iota // Ball bounced off a wall or the paddle
	EventSuccess                         // A brick was broken (audio cue)
	EventBrickDestroyed                  // A brick's destroyed flag was set
	EventBallLost                        // Ball left through the bottom
	EventLevelComplete                   // Every brick of the level is gone
	EventGameOver                        // The run ended
)

// String returns the cue name collaborators subscribe to.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventSuccess:
		return "success"
	case EventBrickDestroyed:
		return "brickDestroyed"
	case EventBallLost:
		return "ballLost"
	case EventLevelComplete:
		return "levelComplete"
	case EventGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Event is one entry of the list a step accumulates. Only the fields relevant
// to Kind are set.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Level int // level id the event happened on
	Brick int // index into State.Bricks for EventBrickDestroyed
	Score int // score after the event
	Lives int // lives after the event
	Won   bool
}

func (e Event) String() string {
	switch e.Kind {
	case EventBrickDestroyed:
		return fmt.Sprintf("%s(brick=%d score=%d)", e.Kind, e.Brick, e.Score)
	case EventBallLost:
		return fmt.Sprintf("%s(lives=%d)", e.Kind, e.Lives)
	case EventLevelComplete:
		return fmt.Sprintf("%s(level=%d)", e.Kind, e.Level)
	case EventGameOver:
		return fmt.Sprintf("%s(won=%t score=%d)", e.Kind, e.Won, e.Score)
	default:
		return e.Kind.String()
	}
}

// Count returns how many events of the given kind are in the list.
func Count(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

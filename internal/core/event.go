package core

// EventKind identifies something noteworthy that happened during a tick.
// The platform turns events into sound effects and score records; games
// never depend on how (or whether) they are presented.
type EventKind int

const (
	EventNone         EventKind = iota
	EventCoin                   // Collectible picked up
	EventHurt                   // Player took damage
	EventGoalUnlocked           // Every collectible gathered
	EventVictory                // Goal reached
	EventDefeat                 // Health ran out
	EventBounce                 // Ball rebounded off a paddle
	EventScore                  // Point scored
	EventMiss                   // Ball lost past the paddle
	EventRunOver                // Lives exhausted; Value carries the final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventCoin:
		return "coin"
	case EventHurt:
		return "hurt"
	case EventGoalUnlocked:
		return "goal-unlocked"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	case EventBounce:
		return "bounce"
	case EventScore:
		return "score"
	case EventMiss:
		return "miss"
	case EventRunOver:
		return "run-over"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by Game.Step.
type Event struct {
	Kind  EventKind
	Value int
}

// Package game provides the main game loop and state management.
package game

// MoveMode is the player's movement stance. Sneaking keeps the player
// low: quieter, but unable to see over short walls.
type MoveMode int

const (
	// ModeSneak is the crouched stance.
	ModeSneak MoveMode = iota
	// ModeWalk is the default stance.
	ModeWalk
	// ModeRun is the hurried stance with a wider view.
	ModeRun
)

// Increase steps the stance up toward running.
func (m MoveMode) Increase() MoveMode {
	if m >= ModeRun {
		return ModeRun
	}
	return m + 1
}

// Decrease steps the stance down toward sneaking.
func (m MoveMode) Decrease() MoveMode {
	if m <= ModeSneak {
		return ModeSneak
	}
	return m - 1
}

// Crouching reports whether the stance blocks peeking over short walls.
func (m MoveMode) Crouching() bool {
	return m == ModeSneak
}

// RadiusDelta is the stance's adjustment to the base view radius.
func (m MoveMode) RadiusDelta() int {
	switch m {
	case ModeSneak:
		return -1
	case ModeRun:
		return 1
	default:
		return 0
	}
}

// String returns a human-readable stance name.
func (m MoveMode) String() string {
	switch m {
	case ModeSneak:
		return "sneaking"
	case ModeWalk:
		return "walking"
	case ModeRun:
		return "running"
	default:
		return "unknown"
	}
}

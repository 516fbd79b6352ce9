package game

import "chosenoffset.com/raycaster/internal/world/scene"

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// keyRepeat tracks how long the keys bound to each event have been held, in ticks.
type keyRepeat struct {
	held map[scene.Event]int
}

// Key repeat timing, in ticks
const (
	repeatDelay    = 15
	repeatInterval = 2
)

// fire reports whether a held binding should trigger this tick: once on press,
// then every repeatInterval ticks after repeatDelay.
func (k *keyRepeat) fire(ev scene.Event, pressed bool) bool {
	if !pressed {
		delete(k.held, ev)
		return false
	}
	if k.held == nil {
		k.held = make(map[scene.Event]int)
	}
	k.held[ev]++

	n := k.held[ev]
	if n == 1 {
		return true
	}
	return n >= repeatDelay && (n-repeatDelay)%repeatInterval == 0
}

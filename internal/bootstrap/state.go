package bootstrap

import "fmt"

// State is the position of a run in the bootstrap sequence. Setup only moves
// forward; any state may jump to StateTornDown, which is terminal.
type State int

const (
	StateUninitialized State = iota
	StateSubsystemReady
	StateWindowCreated
	StateConnectionCreated
	StateSurfaceBound
	StateRunning
	StateTornDown
)

var stateNames = [...]string{
	StateUninitialized:     "Uninitialized",
	StateSubsystemReady:    "SubsystemReady",
	StateWindowCreated:     "WindowCreated",
	StateConnectionCreated: "ConnectionCreated",
	StateSurfaceBound:      "SurfaceBound",
	StateRunning:           "Running",
	StateTornDown:          "TornDown",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

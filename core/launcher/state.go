package launcher

import (
	"time"

	"devserver/core/arguments"

	"github.com/google/uuid"
)

// State is a step in the lifecycle of a launch attempt.
type State int

const (
	StateInit State = iota
	StateProbingPort
	StatePortFound
	StatePortExhausted
	StateLaunching
	StateRunning
	StateExited
	StateAborted
)

var stateNames = map[State]string{
	StateInit:          "init",
	StateProbingPort:   "probing_port",
	StatePortFound:     "port_found",
	StatePortExhausted: "port_exhausted",
	StateLaunching:     "launching",
	StateRunning:       "running",
	StateExited:        "exited",
	StateAborted:       "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateExited || s == StateAborted
}

// Attempt is a single launch, from probing to child exit.
type Attempt struct {
	// ID correlates log entries of this attempt.
	ID uuid.UUID
	// Options are the requested launch options.
	Options arguments.Options
	// Port is the port the child was bound to, zero until one is found.
	Port int
	// Command is the composed child invocation, set once launching starts.
	Command Command
	// ExitCode is the child's exit status, valid once the state is StateExited.
	ExitCode int
	// Started and Finished bound the attempt.
	Started  time.Time
	Finished time.Time

	states []State
}

func newAttempt(opts arguments.Options, now time.Time) *Attempt {
	return &Attempt{
		ID:      uuid.New(),
		Options: opts,
		Started: now,
		states:  []State{StateInit},
	}
}

// State returns the current state.
func (a *Attempt) State() State {
	return a.states[len(a.states)-1]
}

// Transitions returns every state the attempt has been through, in order.
func (a *Attempt) Transitions() []State {
	out := make([]State, len(a.states))
	copy(out, a.states)
	return out
}

func (a *Attempt) moveTo(s State) {
	if a.State().Terminal() {
		return
	}
	a.states = append(a.states, s)
}

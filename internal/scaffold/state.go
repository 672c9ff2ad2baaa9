package scaffold

// State is a stage of a generation run. A run only moves forward.
type State int

// Run states, in order. Artifact states are skipped when not selected.
const (
	StateIdle State = iota
	StateValidated
	StateOptionsCollected
	StateStructureCreated
	StateServiceDone
	StateGuardDone
	StateLayoutDone
	StateModelsDone
	StateSummarized
	StateTerminal
)

var stateNames = map[State]string{
	StateIdle:             "idle",
	StateValidated:        "validated",
	StateOptionsCollected: "options-collected",
	StateStructureCreated: "structure-created",
	StateServiceDone:      "service-done",
	StateGuardDone:        "guard-done",
	StateLayoutDone:       "layout-done",
	StateModelsDone:       "models-done",
	StateSummarized:       "summarized",
	StateTerminal:         "terminal",
}

// String returns the state name.
func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// doneState maps an artifact kind to the state reached after its step.
func doneState(kind ArtifactKind) State {
	switch kind {
	case KindService:
		return StateServiceDone
	case KindGuard:
		return StateGuardDone
	case KindLayout:
		return StateLayoutDone
	case KindModels:
		return StateModelsDone
	}
	return StateIdle
}

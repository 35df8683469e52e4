package valueobjects

type DraftState string

const (
	StateDraft     DraftState = "draft"
	StateSubmitted DraftState = "submitted"
	StateAbandoned DraftState = "abandoned"
)

var validDraftStates = map[DraftState]bool{
	StateDraft:     true,
	StateSubmitted: true,
	StateAbandoned: true,
}

// A draft is only ever left via submission or abandonment. Both are
// terminal: a new draft-start replaces the row instead of transitioning it.
var draftStateTransitions = map[DraftState][]DraftState{
	StateDraft: {
		StateSubmitted,
		StateAbandoned,
	},
	StateSubmitted: {},
	StateAbandoned: {},
}

func (s DraftState) String() string {
	return string(s)
}

func (s DraftState) IsValid() bool {
	return validDraftStates[s]
}

func (s DraftState) IsActive() bool {
	return s == StateDraft
}

func (s DraftState) CanTransitionTo(newState DraftState) bool {
	allowed, ok := draftStateTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newState {
			return true
		}
	}
	return false
}

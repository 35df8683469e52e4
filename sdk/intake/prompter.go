package intake

// Prompter collects an answer for a single follow-up question. It
// decouples the negotiation logic from the UI modality: a terminal
// client can block on stdin while a test feeds canned answers.
//
// Implementations should return an empty string when the user declines
// to answer. An error aborts the whole submission flow.
type Prompter interface {
	Prompt(q Question) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(q Question) (string, error)

func (f PrompterFunc) Prompt(q Question) (string, error) {
	return f(q)
}

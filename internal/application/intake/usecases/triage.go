package usecases

import "strings"

// DefaultMinDescriptionChars is the triage threshold below which a
// description is considered too thin to act on.
const DefaultMinDescriptionChars = 300

// Phrases that signal a vague report regardless of length. Tuned from what
// users actually type, not exhaustive.
var vaguePhrases = []string{
	"cant login",
	"can't login",
	"cannot login",
	"login problem",
	"problem with the internet",
	"internet problem",
	"doesn't work",
	"not working",
	"help",
}

// NeedsFollowup decides whether the AI collaborator should ask clarifying
// questions before the ticket is finalized. minChars <= 0 falls back to the
// default threshold.
func NeedsFollowup(description string, minChars int) bool {
	if minChars <= 0 {
		minChars = DefaultMinDescriptionChars
	}

	d := strings.ToLower(strings.TrimSpace(description))
	if len(d) < minChars {
		return true
	}

	for _, p := range vaguePhrases {
		if strings.Contains(d, p) {
			return true
		}
	}
	return false
}

package intake

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinUserID and MaxUserID bound the numeric identifiers the
	// prototype recognizes.
	MinUserID = 1
	MaxUserID = 99
)

var userPattern = regexp.MustCompile(`^user([0-9]{1,2})$`)

// ParseUserID validates and normalizes a free-text username into a
// numeric user identifier. The input is trimmed and lowercased, then
// matched against "user" followed by one or two digits. Identifiers
// outside [1, 99] are rejected.
func ParseUserID(input string) (uint, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	matches := userPattern.FindStringSubmatch(normalized)
	if matches == nil {
		return 0, newValidationError("invalid username, expected user1 through user99")
	}

	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, newValidationError("invalid username, expected user1 through user99")
	}
	if id < MinUserID || id > MaxUserID {
		return 0, newValidationError("invalid username, expected user1 through user99")
	}

	return uint(id), nil
}

package intake

import "context"

// Session holds the confirmed-identity state for one intake flow. It is
// owned by the form controller and passed explicitly, never global.
type Session struct {
	client    *Client
	confirmed bool
	userID    uint
}

// NewSession creates an unconfirmed session bound to a client.
func NewSession(client *Client) *Session {
	return &Session{client: client}
}

// Confirmed reports whether an identity has been confirmed.
func (s *Session) Confirmed() bool {
	return s.confirmed
}

// UserID returns the confirmed user id, or 0 when unconfirmed.
func (s *Session) UserID() uint {
	if !s.confirmed {
		return 0
	}
	return s.userID
}

// ConfirmIdentity parses the raw username, starts a server-side draft
// and, on success, marks the session confirmed with the parsed id.
//
// A failed attempt never downgrades the session: if a previous
// confirmation succeeded, that last-good identity stays in effect and
// the error is reported to the caller.
func (s *Session) ConfirmIdentity(ctx context.Context, rawUsername string, table int) (uint, error) {
	id, err := ParseUserID(rawUsername)
	if err != nil {
		return 0, err
	}

	if err := s.client.StartDraft(ctx, id, table); err != nil {
		return 0, err
	}

	s.confirmed = true
	s.userID = id
	return id, nil
}

// Reset returns the session to its initial unconfirmed state.
func (s *Session) Reset() {
	s.confirmed = false
	s.userID = 0
}

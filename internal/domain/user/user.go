package user

import (
	"fmt"

	"tickform/internal/domain/draft"
)

// User is a known form user. Identity is confirmed client-side by parsing a
// "userNN" username into the numeric id; the server only records the pair.
type User struct {
	id       uint
	username string
}

func NewUser(id uint, username string) (*User, error) {
	if id < draft.MinUserID || id > draft.MaxUserID {
		return nil, fmt.Errorf("user ID must be between %d and %d", draft.MinUserID, draft.MaxUserID)
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	return &User{id: id, username: username}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

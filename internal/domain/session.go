package domain

import (
	"fmt"
	"strings"
)

// Session is the authenticated identity held by the client. The zero value
// is the empty session; a non-empty session always carries both a user and
// a token.
type Session struct {
	user  *UserIdentity
	token string
}

func NewSession(user UserIdentity, token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, fmt.Errorf("%w: token is empty", ErrInvalidSession)
	}
	if user.ID == 0 && strings.TrimSpace(user.Email) == "" {
		return Session{}, fmt.Errorf("%w: user identity is empty", ErrInvalidSession)
	}

	return Session{user: &user, token: token}, nil
}

func (s Session) User() (UserIdentity, bool) {
	if s.user == nil {
		return UserIdentity{}, false
	}
	return *s.user, true
}

func (s Session) Token() string {
	return s.token
}

func (s Session) IsAuthenticated() bool {
	return s.user != nil && s.token != ""
}

func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.user.IsAdmin()
}

func (s Session) Equal(other Session) bool {
	if s.token != other.token {
		return false
	}
	if s.user == nil || other.user == nil {
		return s.user == other.user
	}
	return *s.user == *other.user
}

package auth

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// ErrStateMismatch indicates that the anti-forgery state returned by the
// identity provider does not match the one issued. The authorisation attempt
// is aborted - this is never recoverable.
var ErrStateMismatch = errors.New("state mismatch")

// Session is the state of one authorisation attempt - the anti-forgery state
// value issued at login and, after the code exchange, the access token. It is
// created when the browser is redirected to the identity provider and
// discarded when the flow ends.
type Session struct {
	State string
	Token *oauth2.Token
}

func NewSession() *Session {
	return &Session{
		State: uuid.NewString(),
	}
}

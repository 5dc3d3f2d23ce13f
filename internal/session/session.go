// Package session holds the runtime binding of "authenticated user"
// for one interaction. The session is an explicit object handed to the
// services that need it, never ambient state; HTTP delivery rebuilds
// one per request from the token, which makes multiple concurrent
// sessions possible without the core knowing about tokens.
package session

import "time"

// State is the authentication state of a session
type State int

// Session states. A session starts Anonymous and moves to
// Authenticated on a successful credential check.
const (
	Anonymous State = iota
	Authenticated
)

// Session tracks the identity bound to one interactive run. It is a
// single-actor state holder and not safe for concurrent use.
type Session struct {
	state    State
	username string
	loginAt  time.Time
}

// New returns a fresh session in the Anonymous state
func New() *Session {
	return &Session{state: Anonymous}
}

// NewAuthenticated returns a session already bound to username, as
// reconstructed from a verified token.
func NewAuthenticated(username string) *Session {
	return &Session{
		state:    Authenticated,
		username: username,
		loginAt:  time.Now(),
	}
}

// Login marks the session authenticated and binds it to username.
// Callers must have validated credentials first.
func (s *Session) Login(username string) {
	s.state = Authenticated
	s.username = username
	s.loginAt = time.Now()
}

// Logout resets the session to Anonymous
func (s *Session) Logout() {
	s.state = Anonymous
	s.username = ""
	s.loginAt = time.Time{}
}

// CurrentUser returns the bound username and whether the session is
// authenticated
func (s *Session) CurrentUser() (string, bool) {
	if s.state != Authenticated {
		return "", false
	}
	return s.username, true
}

// IsAuthenticated reports whether the session is in the Authenticated state
func (s *Session) IsAuthenticated() bool {
	return s.state == Authenticated
}

// LoginAt returns the time the current identity was bound, zero when
// Anonymous
func (s *Session) LoginAt() time.Time {
	return s.loginAt
}

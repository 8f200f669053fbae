package admin

import (
	"crypto/subtle"
	"errors"
)

var (
	ErrIncorrectPassword = errors.New("admin: incorrect password")
	ErrUnauthorized      = errors.New("admin: login required")
)

// Session tracks whether the admin is signed in. The password is a single
// shared secret from configuration; it gates the editor and is not an
// account system.
//
// The flag lives only as long as the Session, so every process run starts
// signed out.
type Session struct {
	secret        string
	authenticated bool
}

// NewSession starts a signed-out session
func NewSession(secret string) *Session {
	return &Session{secret: secret}
}

// Login compares password against the shared secret
func (s *Session) Login(password string) error {
	if s.secret == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		return ErrIncorrectPassword
	}
	s.authenticated = true
	return nil
}

// Logout clears the signed-in flag
func (s *Session) Logout() {
	s.authenticated = false
}

// Authenticated reports whether the admin is signed in
func (s *Session) Authenticated() bool {
	return s != nil && s.authenticated
}

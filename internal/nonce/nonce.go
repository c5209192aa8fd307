package nonce

import (
	"crypto/subtle"

	"github.com/gin-contrib/sessions"
	"github.com/google/uuid"
)

const sessionKey = "form_nonce"

// Get returns the session nonce, creating and saving one when absent
func Get(session sessions.Session) string {
	if v, ok := session.Get(sessionKey).(string); ok && v != "" {
		return v
	}
	v := uuid.NewString()
	session.Set(sessionKey, v)
	_ = session.Save()
	return v
}

// Check reports whether token matches the session nonce
func Check(session sessions.Session, token string) bool {
	v, ok := session.Get(sessionKey).(string)
	if !ok || v == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(v), []byte(token)) == 1
}

package ids

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	SessionSize     = 21
	sessionAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// SessionID returns a new anonymous session identifier.
func SessionID() string {
	return gonanoid.MustGenerate(sessionAlphabet, SessionSize)
}

// OrNew returns id when set, otherwise a fresh session id.
func OrNew(id string) string {
	if id != "" {
		return id
	}
	return SessionID()
}

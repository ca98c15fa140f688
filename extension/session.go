package extension

import "github.com/google/uuid"

// NewSessionID returns a fresh opaque session identifier for hosts that do
// not already track one of their own.
func NewSessionID() string {
	return uuid.NewString()
}

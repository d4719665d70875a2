package models

import "time"

// Session is issued after a successful access-key verification. Token is
// returned to the caller exactly once; only its hash is retained.
type Session struct {
	ID        string     `json:"id"`
	Token     string     `json:"token,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

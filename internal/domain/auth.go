package domain

import "time"

// Session describes a verified bearer token.
type Session struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

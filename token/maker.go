package token

import "time"

// Maker defines a contract for anything that can create and verify tokens,
// so the token implementation can be swapped without touching the rest of
// the application.
type Maker interface {
	CreateToken(email string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}

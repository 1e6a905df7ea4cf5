package model

import "time"

// Session is the identity collaborator's record: an opaque bearer token
// resolved to a user identity. Issuance and bookkeeping live outside
// this service; only resolution is consumed here.
type Session struct {
	ID        int64     `json:"id,string"`
	Token     string    `json:"-"`
	UserID    int64     `json:"user_id,string"`
	UserType  UserType  `json:"user_type"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

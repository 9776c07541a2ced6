package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin accounts are stored and compared as plain text. Hardening the
// credential store is explicitly out of scope.
type Admin struct {
	ID       string
	Password string
}

// Session identifies one logged-in admin for the lifetime of the menu loop.
type Session struct {
	ID        uuid.UUID
	AdminID   string
	StartedAt time.Time
}

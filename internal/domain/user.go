package domain

import "time"

// User is a chat participant. ID is the Telegram user id and never changes.
type User struct {
	ID             int64
	Name           string
	ConnectionDate time.Time
}

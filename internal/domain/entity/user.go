package entity

import "time"

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the cleartext credential.
//
// IsAdmin is an explicit role flag; exactly one account carries it by
// default, the first one registered.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	IsAdmin   bool
	CreatedAt time.Time
}

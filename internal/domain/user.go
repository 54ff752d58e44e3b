package domain

import "time"

// User is the single account entity of the system. HashedPassword is only
// populated when the record is loaded by email for login verification; every
// other read path leaves it empty.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

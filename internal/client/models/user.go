// Package models holds the data types shared by the client layers.
package models

import "time"

// User is the authenticated account as returned by the API.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

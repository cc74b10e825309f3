package model

import "time"

// User represents a user in the system.
type User struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateUserRequest is the request body for user creation. Email doubles as
// the de-duplication key: creating a user whose email already exists returns
// the existing record unchanged.
type CreateUserRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Image       string `json:"image"`
}

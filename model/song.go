package model

import "time"

// Song represents a generated song. UserID is a weak reference to the owning
// user; it is checked at creation time but not enforced by the database.
type Song struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Color        string    `json:"color"`
	Symbol       string    `json:"symbol"`
	ChemicalName string    `json:"chemical_name"`
	Style        string    `json:"style"`
	Lyrics       string    `json:"lyrics"`
	URL          string    `json:"url"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSongRequest is the request body for song creation.
type CreateSongRequest struct {
	Title        string `json:"title"`
	UserID       int64  `json:"user_id"`
	Type         string `json:"type"`
	Color        string `json:"color"`
	Symbol       string `json:"symbol"`
	ChemicalName string `json:"chemical_name"`
	Style        string `json:"style"`
	Lyrics       string `json:"lyrics"`
	Image        string `json:"image"`
	URL          string `json:"url"`
}

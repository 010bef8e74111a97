package models

// Game is a catalog entry as served by the backend.
type Game struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

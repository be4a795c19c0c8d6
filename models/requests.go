package models

// NoteRequest is the inbound body for note create and update endpoints.
// The owner is always taken from the bearer token, so the body carries
// content fields only.
type NoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

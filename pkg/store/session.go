package store

import "time"

// Session captures the candidate artifacts produced by one image upload.
// It is created when extraction finishes and consumed by the next audio
// upload; a newer image upload supersedes it.
type Session struct {
	ID        string    `json:"id"`
	ImagePath string    `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`

	// Candidates holds the cropped region paths in prediction order.
	// Matching walks this slice front to back; order is significant.
	Candidates []string `json:"candidates"`
}

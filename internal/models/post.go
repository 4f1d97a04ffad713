package models

import "time"

// Post is a single feed entry. A post has exactly one author and is never
// mutated after creation.
type Post struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	DateCreated time.Time `json:"date_created"`
	UserID      int       `json:"user_id"`
	Username    string    `json:"username,omitempty"` // author name, filled when listing the feed
}

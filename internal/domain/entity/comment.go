package entity

import "time"

// Comment is a reply to a Post. Comments are never edited or deleted on
// their own; they go away with their parent post.
type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Author    *User
	Text      string
	CreatedAt time.Time
}

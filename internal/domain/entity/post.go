package entity

import "time"

// Post is a blog entry. Title is unique across the store. AuthorID must
// resolve to an existing User; Author is populated on reads that join
// the users table.
type Post struct {
	ID        int64
	AuthorID  int64
	Author    *User
	Title     string
	Subtitle  string
	Body      string
	ImgURL    string
	CreatedAt time.Time
}

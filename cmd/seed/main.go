package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/westernstar/blog/config"
	"github.com/westernstar/blog/pkg/helpers"
)

// Seeds the administrator account and a welcome post. The admin is
// whichever user lands first in the table, so run this before opening
// registration.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@westernstar.local"
	password := "changeme123"
	name := "Administrator"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password, name, is_admin)
		VALUES ($1, $2, $3, NOT EXISTS (SELECT 1 FROM users))
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d email=%s password=%s\n", id, email, password)

	var postID int64
	err = db.QueryRow(`
		INSERT INTO posts (author_id, title, subtitle, body, img_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (title) DO UPDATE SET subtitle = EXCLUDED.subtitle
		RETURNING id
	`, id,
		"Welcome to Western Star",
		"A fresh start",
		"This is the first post. Edit or delete it from the admin account.",
		"https://storage.googleapis.com/western-star/covers/welcome.png",
	).Scan(&postID)
	if err != nil {
		log.Fatalf("failed to seed welcome post: %v", err)
	}
	fmt.Printf("seeded welcome post: id=%d\n", postID)
}

package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/webcraft-academy/elearn-api/config"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
)

// Seeds a demo admin account and a handful of courses so a fresh
// environment has something to browse.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@webcraft.dev"
	password := "admin1234"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, last_name, date_of_birth, image_url, role)
		VALUES ($1, $2, 'Admin', 'User', '1990-01-01', '', 'admin')
		ON CONFLICT (email) DO UPDATE SET role = 'admin'
		RETURNING id
	`, email, hash).Scan(&adminID)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", adminID, email, password)

	courses := []struct {
		title, description, category, duration string
		charges                                float64
	}{
		{"React from Scratch", "Build modern single page applications with React.", "Web Development", "6 weeks", 49.99},
		{"Flutter Crash Course", "Ship a cross-platform mobile app with Flutter.", "App Development", "4 weeks", 39.99},
		{"SEO Essentials", "Rank higher with practical search engine optimization.", "Digital Marketing", "3 weeks", 29.99},
		{"Instagram Growth Playbook", "Grow an audience with organic social campaigns.", "Social Media Marketing", "2 weeks", 19.99},
		{"Logo Design with Figma", "Design brand identities from brief to delivery.", "Graphic Designing", "5 weeks", 44.99},
	}

	for _, c := range courses {
		var exists bool
		if err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM courses WHERE title = $1)`, c.title).Scan(&exists); err != nil {
			log.Fatalf("failed to check course %q: %v", c.title, err)
		}
		if exists {
			continue
		}
		var id string
		err := db.QueryRow(`
			INSERT INTO courses (title, description, category, duration, charges, image_url, status)
			VALUES ($1, $2, $3, $4, $5, '', 'active')
			RETURNING id
		`, c.title, c.description, c.category, c.duration, c.charges).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed course %q: %v", c.title, err)
		}
		fmt.Printf("seeded course: id=%s title=%q\n", id, c.title)
	}
}

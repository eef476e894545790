package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/khoahotran/foliohub/internal/domain/profile"
	"github.com/khoahotran/foliohub/pkg/auth"
)

// Seeds one demo account with a default profile, for local development.
// Usage: DB_DSN=... SEED_USERNAME=demo SEED_EMAIL=demo@example.com SEED_PASSWORD=... go run ./scripts
func main() {
	fmt.Println("adding demo user into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	username := os.Getenv("SEED_USERNAME")
	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")

	if dsn == "" || username == "" || email == "" || password == "" {
		log.Fatal("FATAL: DB_DSN, SEED_USERNAME, SEED_EMAIL and SEED_PASSWORD are required")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("FATAL: cannot hash password: %v", err)
	}

	userID := uuid.New()
	now := time.Now().UTC()

	query := `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET password_hash = $4
	`
	_, err = pool.Exec(context.Background(), query, userID, username, email, hash, now, now)
	if err != nil {
		log.Fatalf("FATAL: cannot seed user: %v", err)
	}

	p := profile.NewDefault(userID, username)
	socialLinks, _ := json.Marshal(p.SocialLinks)
	profileQuery := `
		INSERT INTO profiles (id, user_id, username, full_name, title, bio, location, avatar, social_links, theme, layout, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err = pool.Exec(context.Background(), profileQuery,
		p.ID, p.UserID, p.Username, p.FullName, p.Title, p.Bio, p.Location,
		p.Avatar, socialLinks, p.Theme, p.Layout, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		log.Fatalf("FATAL: cannot seed profile: %v", err)
	}

	fmt.Printf("seeded user '%s' (%s)\n", username, email)
}

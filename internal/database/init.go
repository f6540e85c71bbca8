package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/database/schema"
)

// InitializeDatabase creates all tables and indexes if they don't exist,
// then makes sure the root user is present
func InitializeDatabase(db *sql.DB, rootEmail string) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, query := range schema.IndexDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	rootEmail = strings.ToLower(strings.TrimSpace(rootEmail))
	if rootEmail == "" {
		return nil
	}

	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", rootEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check root user existence: %w", err)
	}
	if exists {
		return nil
	}

	now := time.Now().UTC()
	_, err = db.Exec(
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(), rootEmail, "Root User", now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create root user: %w", err)
	}

	return nil
}

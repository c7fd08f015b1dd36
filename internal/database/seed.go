package database

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/savasana-io/savasana/internal/models"
)

// Rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL. SQLite
// queries are returned unchanged.
func Rebind(dbType, query string) string {
	if dbType != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Seed inserts the default teachers and the studio admin account when the
// corresponding tables are empty. Running it twice is a no-op.
func Seed(db *sql.DB, dbType string) error {
	var teacherCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM teachers").Scan(&teacherCount); err != nil {
		return fmt.Errorf("failed to count teachers: %v", err)
	}

	now := time.Now()
	if teacherCount == 0 {
		teachers := []struct{ firstName, lastName string }{
			{"Margot", "DELAHAYE"},
			{"Hélène", "THIERCELIN"},
		}
		for _, t := range teachers {
			_, err := db.Exec(
				Rebind(dbType, "INSERT INTO teachers (first_name, last_name, created_at, updated_at) VALUES (?, ?, ?, ?)"),
				t.firstName, t.lastName, now, now,
			)
			if err != nil {
				return fmt.Errorf("failed to seed teacher %s %s: %v", t.firstName, t.lastName, err)
			}
		}
		log.Printf("Seeded %d default teachers", len(teachers))
	}

	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("failed to count users: %v", err)
	}

	if userCount == 0 {
		admin, err := models.NewUser("yoga@studio.com", "Admin", "Admin", "test!1234", true)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %v", err)
		}
		_, err = db.Exec(
			Rebind(dbType, "INSERT INTO users (email, first_name, last_name, password, admin, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)"),
			admin.Email, admin.FirstName, admin.LastName, admin.Password, admin.Admin, admin.CreatedAt, admin.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed admin user: %v", err)
		}
		log.Printf("Seeded default admin account %s", admin.Email)
	}

	return nil
}

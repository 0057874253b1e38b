package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dimitrije/intervue-api/internal/database"
	"github.com/dimitrije/intervue-api/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser inserts a user directly, bypassing the sync path
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		ExternalID: fmt.Sprintf("user_%d", f.counter),
		Email:      fmt.Sprintf("user%d@example.com", f.counter),
		Name:       fmt.Sprintf("Test User %d", f.counter),
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (external_id, email, name, image, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, user.ExternalID, user.Email, user.Name, user.Image, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

func WithExternalID(externalID string) UserOption {
	return func(u *models.User) {
		u.ExternalID = externalID
	}
}

func WithRole(role string) UserOption {
	return func(u *models.User) {
		u.Role = &role
	}
}

func WithImage(url string) UserOption {
	return func(u *models.User) {
		u.Image = &url
	}
}

// CountUsers returns the number of rows with externalID
func (f *Fixtures) CountUsers(t *testing.T, externalID string) int {
	t.Helper()
	var n int
	err := f.db.Pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE external_id = $1`, externalID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	return n
}

// CountComments returns the total number of comment rows
func (f *Fixtures) CountComments(t *testing.T) int {
	t.Helper()
	var n int
	if err := f.db.Pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM comments`).Scan(&n); err != nil {
		t.Fatalf("failed to count comments: %v", err)
	}
	return n
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/intervue-api/internal/database"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

type SyncUserParams struct {
	ExternalID string
	Email      string
	Name       string
	Image      string
}

// SyncUser records a provider identity. Repeated calls with the same
// ExternalID return the existing row's id and leave its fields unchanged, so
// redelivered webhooks never create duplicates.
func (s *UserService) SyncUser(ctx context.Context, params SyncUserParams) (uuid.UUID, error) {
	if params.ExternalID == "" {
		return uuid.Nil, errors.New("external id is required")
	}

	var id uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (external_id, email, name, image)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id) DO UPDATE SET external_id = EXCLUDED.external_id
		RETURNING id
	`, params.ExternalID, params.Email, params.Name, nullableString(params.Image)).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to sync user: %w", err)
	}
	return id, nil
}

func (s *UserService) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, external_id, email, name, image, role, created_at
		FROM users WHERE external_id = $1
	`, externalID).Scan(
		&user.ID, &user.ExternalID, &user.Email, &user.Name,
		&user.Image, &user.Role, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetRole assigns role to the user, or clears it when role is empty.
func (s *UserService) SetRole(ctx context.Context, externalID, role string) error {
	if role != "" && !models.IsValidRole(role) {
		return ErrInvalidRole
	}

	result, err := s.db.Pool.Exec(ctx, `
		UPDATE users SET role = $1 WHERE external_id = $2
	`, nullableString(role), externalID)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

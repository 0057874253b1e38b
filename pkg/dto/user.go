package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"external_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Image      *string   `json:"image,omitempty"`
	Role       *string   `json:"role,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoleResponse struct {
	IsLoading     bool `json:"is_loading"`
	IsInterviewer bool `json:"is_interviewer"`
	IsCandidate   bool `json:"is_candidate"`
}

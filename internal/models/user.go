package models

import (
	"time"

	"github.com/google/uuid"
)

// Interview roles. A user without a role has Role == nil.
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
)

type User struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"external_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Image      *string   `json:"image,omitempty"`
	Role       *string   `json:"role,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasRole reports whether the user has been assigned role.
func (u *User) HasRole(role string) bool {
	return u != nil && u.Role != nil && *u.Role == role
}

func IsValidRole(role string) bool {
	return role == RoleInterviewer || role == RoleCandidate
}

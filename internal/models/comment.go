package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID            uuid.UUID `json:"id"`
	InterviewID   string    `json:"interview_id"`
	Content       string    `json:"content"`
	Rating        float64   `json:"rating"`
	InterviewerID string    `json:"interviewer_id"`
	CreatedAt     time.Time `json:"created_at"`
}

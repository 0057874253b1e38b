package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddCommentRequest has no interviewer field; the author is always the caller.
type AddCommentRequest struct {
	Content string  `json:"content"`
	Rating  float64 `json:"rating"`
}

type CommentResponse struct {
	ID            uuid.UUID `json:"id"`
	InterviewID   string    `json:"interview_id"`
	Content       string    `json:"content"`
	Rating        float64   `json:"rating"`
	InterviewerID string    `json:"interviewer_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/intervue-api/internal/database"
	"github.com/dimitrije/intervue-api/internal/identity"
	"github.com/dimitrije/intervue-api/internal/models"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidComment  = errors.New("invalid comment")
)

type CommentService struct {
	db *database.DB
}

func NewCommentService(db *database.DB) *CommentService {
	return &CommentService{db: db}
}

type AddCommentParams struct {
	InterviewID string
	Content     string
	Rating      float64
}

// AddComment stores a comment authored by caller. The interviewer id always
// comes from caller; params carry no author.
func (s *CommentService) AddComment(ctx context.Context, caller *identity.Caller, params AddCommentParams) (*models.Comment, error) {
	if !caller.Present() {
		return nil, ErrUnauthenticated
	}
	if params.InterviewID == "" {
		return nil, fmt.Errorf("%w: interview id is required", ErrInvalidComment)
	}

	var comment models.Comment
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO comments (interview_id, content, rating, interviewer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, interview_id, content, rating, interviewer_id, created_at
	`, params.InterviewID, params.Content, params.Rating, caller.Subject).Scan(
		&comment.ID, &comment.InterviewID, &comment.Content,
		&comment.Rating, &comment.InterviewerID, &comment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &comment, nil
}

// GetComments lists every comment on an interview. It is intentionally open
// to unauthenticated callers.
func (s *CommentService) GetComments(ctx context.Context, interviewID string) ([]models.Comment, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, interview_id, content, rating, interviewer_id, created_at
		FROM comments WHERE interview_id = $1
		ORDER BY created_at
	`, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.ID, &c.InterviewID, &c.Content, &c.Rating,
			&c.InterviewerID, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

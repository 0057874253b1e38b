package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dimitrije/intervue-api/internal/database"
	"github.com/dimitrije/intervue-api/internal/identity"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"id", "interview_id", "content", "rating", "interviewer_id", "created_at"}

func setupCommentService(t *testing.T) (*CommentService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewCommentService(db), mock
}

func TestCommentService_AddComment(t *testing.T) {
	svc, mock := setupCommentService(t)
	ctx := context.Background()
	caller := &identity.Caller{Subject: "user_interviewer"}
	commentID := uuid.New()
	now := time.Now()
	params := AddCommentParams{InterviewID: "int_1", Content: "Strong on graphs", Rating: 4}

	rows := pgxmock.NewRows(commentColumns).
		AddRow(commentID, params.InterviewID, params.Content, params.Rating, caller.Subject, now)

	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs(params.InterviewID, params.Content, params.Rating, caller.Subject).
		WillReturnRows(rows)

	comment, err := svc.AddComment(ctx, caller, params)

	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	assert.Equal(t, "user_interviewer", comment.InterviewerID)
	assert.Equal(t, 4.0, comment.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_AddComment_NoCallerTouchesNothing(t *testing.T) {
	svc, mock := setupCommentService(t)
	params := AddCommentParams{InterviewID: "int_1", Content: "x", Rating: 1}

	testCases := []struct {
		name   string
		caller *identity.Caller
	}{
		{"nil caller", nil},
		{"empty subject", &identity.Caller{Email: "a@x.com"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddComment(context.Background(), tc.caller, params)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}

	// No expectations were registered, so any store call would fail here.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_AddComment_MissingInterviewID(t *testing.T) {
	svc, mock := setupCommentService(t)

	_, err := svc.AddComment(context.Background(), &identity.Caller{Subject: "user_1"}, AddCommentParams{Content: "x"})

	assert.ErrorIs(t, err, ErrInvalidComment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_AddComment_DatabaseError(t *testing.T) {
	svc, mock := setupCommentService(t)
	caller := &identity.Caller{Subject: "user_1"}

	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs("int_1", "x", 3.0, "user_1").
		WillReturnError(errors.New("connection reset"))

	_, err := svc.AddComment(context.Background(), caller, AddCommentParams{InterviewID: "int_1", Content: "x", Rating: 3})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add comment")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_GetComments(t *testing.T) {
	svc, mock := setupCommentService(t)
	now := time.Now()

	rows := pgxmock.NewRows(commentColumns).
		AddRow(uuid.New(), "int_1", "good", 4.0, "user_a", now).
		AddRow(uuid.New(), "int_1", "fine", 3.0, "user_b", now)

	mock.ExpectQuery(`SELECT .+ FROM comments WHERE interview_id`).
		WithArgs("int_1").
		WillReturnRows(rows)

	comments, err := svc.GetComments(context.Background(), "int_1")

	require.NoError(t, err)
	require.Len(t, comments, 2)

	authors := []string{comments[0].InterviewerID, comments[1].InterviewerID}
	assert.ElementsMatch(t, []string{"user_a", "user_b"}, authors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_GetComments_Empty(t *testing.T) {
	svc, mock := setupCommentService(t)

	mock.ExpectQuery(`SELECT .+ FROM comments WHERE interview_id`).
		WithArgs("int_none").
		WillReturnRows(pgxmock.NewRows(commentColumns))

	comments, err := svc.GetComments(context.Background(), "int_none")

	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

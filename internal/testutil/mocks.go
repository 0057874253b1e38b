package testutil

import (
	"context"

	"github.com/dimitrije/intervue-api/internal/identity"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/dimitrije/intervue-api/internal/services"
	"github.com/dimitrije/intervue-api/internal/sse"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SyncUser(ctx context.Context, params services.SyncUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserService) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCommentService mocks the CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, caller *identity.Caller, params services.AddCommentParams) (*models.Comment, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) GetComments(ctx context.Context, interviewID string) ([]models.Comment, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// MockSSEHub mocks the comment stream hub
type MockSSEHub struct {
	mock.Mock
}

func (m *MockSSEHub) Register(client *sse.Client) {
	m.Called(client)
}

func (m *MockSSEHub) Unregister(client *sse.Client) {
	m.Called(client)
}

func (m *MockSSEHub) SubscribeToInterview(clientID, interviewID string) bool {
	args := m.Called(clientID, interviewID)
	return args.Bool(0)
}

func (m *MockSSEHub) UnsubscribeFromInterview(clientID, interviewID string) {
	m.Called(clientID, interviewID)
}

func (m *MockSSEHub) BroadcastCommentAdded(comment *models.Comment) {
	m.Called(comment)
}

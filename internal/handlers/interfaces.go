package handlers

import (
	"context"
	"net/http"

	"github.com/dimitrije/intervue-api/internal/identity"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/dimitrije/intervue-api/internal/services"
	"github.com/dimitrije/intervue-api/internal/sse"
	"github.com/dimitrije/intervue-api/internal/webhook"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
}

// CommentServiceInterface defines the methods used by handlers from CommentService
type CommentServiceInterface interface {
	AddComment(ctx context.Context, caller *identity.Caller, params services.AddCommentParams) (*models.Comment, error)
	GetComments(ctx context.Context, interviewID string) ([]models.Comment, error)
}

// CommentBroadcaster is the part of the SSE hub the comment handler needs
type CommentBroadcaster interface {
	BroadcastCommentAdded(comment *models.Comment)
}

// SSEHubInterface defines the methods used by handlers from the SSE hub
type SSEHubInterface interface {
	CommentBroadcaster
	Register(client *sse.Client)
	Unregister(client *sse.Client)
	SubscribeToInterview(clientID, interviewID string) bool
	UnsubscribeFromInterview(clientID, interviewID string)
}

// WebhookVerifier authenticates raw webhook deliveries
type WebhookVerifier interface {
	Verify(rawBody []byte, headers http.Header) (*webhook.Envelope, error)
}

// EventDispatcher routes decoded webhook events
type EventDispatcher interface {
	Dispatch(ctx context.Context, evt webhook.Event) error
}

package handlers

import (
	"errors"

	"github.com/dimitrije/intervue-api/internal/metrics"
	"github.com/dimitrije/intervue-api/internal/middleware"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/dimitrije/intervue-api/internal/services"
	"github.com/dimitrije/intervue-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService CommentServiceInterface
	hub            CommentBroadcaster
	metrics        metrics.Recorder
	logger         *zap.Logger
}

func NewCommentHandler(commentService CommentServiceInterface, hub CommentBroadcaster, recorder metrics.Recorder, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		hub:            hub,
		metrics:        recorder,
		logger:         logger,
	}
}

// Create expects OptionalAuth in front of it; the service decides whether an
// anonymous caller may write.
func (h *CommentHandler) Create(c *drift.Context) {
	caller := middleware.GetCaller(c)

	var req dto.AddCommentRequest
	if err := c.BindJSON(&req); err != nil && caller.Present() {
		c.BadRequest("invalid request body")
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), caller, services.AddCommentParams{
		InterviewID: c.Param("interviewId"),
		Content:     req.Content,
		Rating:      req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthenticated):
			c.Unauthorized("not authenticated")
		case errors.Is(err, services.ErrInvalidComment):
			c.BadRequest("interview id is required")
		default:
			h.logger.Error("failed to add comment", zap.String("interview_id", c.Param("interviewId")), zap.Error(err))
			c.InternalServerError("failed to add comment")
		}
		return
	}

	h.metrics.RecordCommentCreated()
	h.hub.BroadcastCommentAdded(comment)

	_ = c.JSON(201, toCommentResponse(comment))
}

func (h *CommentHandler) List(c *drift.Context) {
	interviewID := c.Param("interviewId")

	comments, err := h.commentService.GetComments(c.Request.Context(), interviewID)
	if err != nil {
		h.logger.Error("failed to list comments", zap.String("interview_id", interviewID), zap.Error(err))
		c.InternalServerError("failed to get comments")
		return
	}

	resp := dto.CommentListResponse{Comments: make([]dto.CommentResponse, 0, len(comments))}
	for i := range comments {
		resp.Comments = append(resp.Comments, toCommentResponse(&comments[i]))
	}

	_ = c.JSON(200, resp)
}

func toCommentResponse(comment *models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:            comment.ID,
		InterviewID:   comment.InterviewID,
		Content:       comment.Content,
		Rating:        comment.Rating,
		InterviewerID: comment.InterviewerID,
		CreatedAt:     comment.CreatedAt,
	}
}

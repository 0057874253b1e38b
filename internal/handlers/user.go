package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/dimitrije/intervue-api/internal/middleware"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/dimitrije/intervue-api/internal/roles"
	"github.com/dimitrije/intervue-api/internal/services"
	"github.com/dimitrije/intervue-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

// roleWaitTimeout bounds how long GetMyRole blocks before answering Loading.
const roleWaitTimeout = 3 * time.Second

type UserHandler struct {
	userService UserServiceInterface
	logger      *zap.Logger
}

func NewUserHandler(userService UserServiceInterface, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

func (h *UserHandler) GetByExternalID(c *drift.Context) {
	user, err := h.userService.GetByExternalID(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.NotFound("user not found")
			return
		}
		h.logger.Error("failed to get user", zap.Error(err))
		c.InternalServerError("failed to get user")
		return
	}

	_ = c.JSON(200, toUserResponse(user))
}

// GetMyRole answers with the resolved role flags for the caller. Anonymous
// callers resolve to no role. A lookup that outlives roleWaitTimeout is
// reported as still loading.
func (h *UserHandler) GetMyRole(c *drift.Context) {
	resolver := roles.Resolve(c.Request.Context(), h.userService, middleware.GetCaller(c))

	ctx, cancel := context.WithTimeout(c.Request.Context(), roleWaitTimeout)
	defer cancel()

	state, err := resolver.Wait(ctx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		h.logger.Warn("role lookup failed", zap.Error(err))
	}

	_ = c.JSON(200, dto.RoleResponse{
		IsLoading:     state.IsLoading,
		IsInterviewer: state.IsInterviewer,
		IsCandidate:   state.IsCandidate,
	})
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		ExternalID: user.ExternalID,
		Email:      user.Email,
		Name:       user.Name,
		Image:      user.Image,
		Role:       user.Role,
		CreatedAt:  user.CreatedAt,
	}
}

package webhook

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dimitrije/intervue-api/internal/services"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSyncFailed wraps a store failure after successful verification. The
// provider is expected to redeliver.
var ErrSyncFailed = errors.New("user sync failed")

type UserSyncer interface {
	SyncUser(ctx context.Context, params services.SyncUserParams) (uuid.UUID, error)
}

type Dispatcher struct {
	users  UserSyncer
	logger *zap.Logger
}

func NewDispatcher(users UserSyncer, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{users: users, logger: logger}
}

// Dispatch acts on evt. Unknown events are acknowledged without error.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) error {
	switch e := evt.(type) {
	case UserCreated:
		return d.userCreated(ctx, e)
	case Unknown:
		d.logger.Debug("ignoring webhook event", zap.String("type", e.RawType))
		return nil
	default:
		return fmt.Errorf("unhandled event variant %T", evt)
	}
}

func (d *Dispatcher) userCreated(ctx context.Context, e UserCreated) error {
	name := strings.TrimSpace(e.FirstName + " " + e.LastName)

	id, err := d.users.SyncUser(ctx, services.SyncUserParams{
		ExternalID: e.ExternalID,
		Email:      e.Email,
		Name:       name,
		Image:      e.ImageURL,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	d.logger.Info("user synced",
		zap.String("external_id", e.ExternalID),
		zap.String("user_id", id.String()),
	)
	return nil
}

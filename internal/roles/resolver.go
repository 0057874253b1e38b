// Package roles derives interview role flags for a caller from their user
// record. Resolution is asynchronous; a Resolver reports Loading until the
// lookup returns.
package roles

import (
	"context"
	"errors"
	"sync"

	"github.com/dimitrije/intervue-api/internal/identity"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/dimitrije/intervue-api/internal/services"
)

type UserLookup interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
}

// State is what clients branch on. IsInterviewer and IsCandidate are never
// both true, and both are false while IsLoading.
type State struct {
	IsLoading     bool `json:"is_loading"`
	IsInterviewer bool `json:"is_interviewer"`
	IsCandidate   bool `json:"is_candidate"`
}

var Loading = State{IsLoading: true}

func stateFor(user *models.User) State {
	return State{
		IsInterviewer: user.HasRole(models.RoleInterviewer),
		IsCandidate:   user.HasRole(models.RoleCandidate),
	}
}

type Resolver struct {
	mu    sync.RWMutex
	state State
	err   error
	done  chan struct{}
}

// Resolve starts resolving caller's role. A caller without a session resolves
// immediately with no role and without touching lookup.
func Resolve(ctx context.Context, lookup UserLookup, caller *identity.Caller) *Resolver {
	r := &Resolver{state: Loading, done: make(chan struct{})}

	if !caller.Present() {
		r.finish(State{}, nil)
		return r
	}

	go func() {
		user, err := lookup.GetByExternalID(ctx, caller.Subject)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			r.finish(State{}, nil)
		case err != nil:
			r.finish(State{}, err)
		default:
			r.finish(stateFor(user), nil)
		}
	}()
	return r
}

func (r *Resolver) finish(s State, err error) {
	r.mu.Lock()
	r.state = s
	r.err = err
	r.mu.Unlock()
	close(r.done)
}

// State returns the current snapshot without blocking.
func (r *Resolver) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Err is the lookup error, if resolution failed.
func (r *Resolver) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Done is closed once the resolver leaves Loading.
func (r *Resolver) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until resolution finishes or ctx ends. On ctx expiry it returns
// the Loading state and ctx's error.
func (r *Resolver) Wait(ctx context.Context) (State, error) {
	select {
	case <-r.done:
		return r.State(), r.Err()
	case <-ctx.Done():
		return r.State(), ctx.Err()
	}
}

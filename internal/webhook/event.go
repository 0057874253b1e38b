package webhook

import (
	"encoding/json"
	"fmt"
)

const TypeUserCreated = "user.created"

// Event is a decoded delivery. The set of implementations is closed; add a
// type here and a case in Dispatcher.Dispatch to handle a new kind.
type Event interface {
	EventType() string
	isEvent()
}

type UserCreated struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
	ImageURL   string
}

func (UserCreated) EventType() string { return TypeUserCreated }
func (UserCreated) isEvent()          {}

// Unknown is any type this service does not act on, including
// user.updated and user.deleted.
type Unknown struct {
	RawType string
}

func (u Unknown) EventType() string { return u.RawType }
func (Unknown) isEvent()            {}

type userCreatedData struct {
	ID             string `json:"id"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ImageURL  *string `json:"image_url"`
}

// Decode maps a verified envelope onto an Event.
func Decode(env *Envelope) (Event, error) {
	switch env.Type {
	case TypeUserCreated:
		return decodeUserCreated(env.Data)
	default:
		return Unknown{RawType: env.Type}, nil
	}
}

func decodeUserCreated(raw json.RawMessage) (Event, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s has no data", ErrMalformedPayload, TypeUserCreated)
	}

	var data userCreatedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if data.ID == "" {
		return nil, fmt.Errorf("%w: user id is missing", ErrMalformedPayload)
	}
	if len(data.EmailAddresses) == 0 {
		return nil, fmt.Errorf("%w: user has no email addresses", ErrMalformedPayload)
	}

	return UserCreated{
		ExternalID: data.ID,
		Email:      data.EmailAddresses[0].EmailAddress,
		FirstName:  deref(data.FirstName),
		LastName:   deref(data.LastName),
		ImageURL:   deref(data.ImageURL),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

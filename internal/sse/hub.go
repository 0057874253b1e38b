// Package sse fans out comment events to clients watching an interview.
package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const EventCommentAdded = "comment_added"

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type CommentAddedEvent struct {
	CommentID     uuid.UUID `json:"comment_id"`
	InterviewID   string    `json:"interview_id"`
	Content       string    `json:"content"`
	Rating        float64   `json:"rating"`
	InterviewerID string    `json:"interviewer_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type Client struct {
	ID string
	// Subject is the caller's external id, empty for anonymous watchers.
	Subject    string
	Interviews map[string]bool
	Send       chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *InterviewMessage
	logger     *zap.Logger
	mu         sync.RWMutex
}

type InterviewMessage struct {
	InterviewID string
	Event       Event
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *InterviewMessage, 256),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Event)
			if err != nil {
				h.logger.Error("failed to encode stream event", zap.String("type", msg.Event.Type), zap.Error(err))
				continue
			}

			h.mu.RLock()
			for _, client := range h.clients {
				if client.Interviews[msg.InterviewID] {
					select {
					case client.Send <- data:
					default:
						h.logger.Debug("dropping event for slow client", zap.String("client_id", client.ID))
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// SubscribeToInterview reports whether clientID is connected.
func (h *Hub) SubscribeToInterview(clientID, interviewID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	client, ok := h.clients[clientID]
	if !ok {
		return false
	}
	client.Interviews[interviewID] = true
	return true
}

func (h *Hub) UnsubscribeFromInterview(clientID, interviewID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		delete(client.Interviews, interviewID)
	}
}

func (h *Hub) BroadcastCommentAdded(comment *models.Comment) {
	h.broadcast <- &InterviewMessage{
		InterviewID: comment.InterviewID,
		Event: Event{
			Type: EventCommentAdded,
			Data: CommentAddedEvent{
				CommentID:     comment.ID,
				InterviewID:   comment.InterviewID,
				Content:       comment.Content,
				Rating:        comment.Rating,
				InterviewerID: comment.InterviewerID,
				CreatedAt:     comment.CreatedAt,
			},
		},
	}
}

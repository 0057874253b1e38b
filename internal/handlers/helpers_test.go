package handlers

import (
	"sync"
	"time"

	"github.com/dimitrije/intervue-api/internal/services"
)

func newTestJWTService() *services.JWTService {
	return services.NewJWTService("test-secret-key", "", 15*time.Minute)
}

// recordingMetrics counts what handlers report
type recordingMetrics struct {
	mu           sync.Mutex
	webhooks     map[string]int
	usersSynced  int
	commentsMade int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{webhooks: make(map[string]int)}
}

func (m *recordingMetrics) RecordWebhook(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.webhooks[outcome]++
}

func (m *recordingMetrics) RecordUserSynced() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usersSynced++
}

func (m *recordingMetrics) RecordCommentCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentsMade++
}

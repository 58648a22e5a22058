package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchesRefreshedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Total     int    `json:"total"`
	Timestamp string `json:"timestamp"`
}

// Notifier fans match lifecycle events out to connected clients.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyMatchesRefreshed(jobID uuid.UUID, total int) {
	if n == nil || n.hub == nil {
		return
	}
	if jobID == uuid.Nil {
		return
	}

	evt := MatchesRefreshedEvent{
		Type:      "matches_refreshed",
		JobID:     jobID.String(),
		Total:     total,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}

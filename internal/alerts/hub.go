package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"fraud-detection-backend/internal/models"

	"github.com/olahol/melody"
)

// FraudCreatedEvent is the websocket message pushed for each stored fraud.
type FraudCreatedEvent struct {
	Type  string       `json:"type"`
	Fraud models.Fraud `json:"fraud"`
}

const EventFraudCreated = "fraud.created"

// Hub is the live fraud feed served on /ws/frauds.
type Hub struct {
	m *melody.Melody
}

func NewHub() *Hub {
	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		log.Printf("[WS] client connected from %s", s.Request.RemoteAddr)
	})
	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("[WS] client disconnected from %s", s.Request.RemoteAddr)
	})
	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("[WS] error: %v", err)
	})

	return &Hub{m: m}
}

// HandleRequest upgrades the request and keeps the session subscribed.
func (h *Hub) HandleRequest(w http.ResponseWriter, r *http.Request) error {
	return h.m.HandleRequest(w, r)
}

// Subscribers returns the number of connected sessions.
func (h *Hub) Subscribers() int {
	return h.m.Len()
}

func (h *Hub) NotifyFraud(_ context.Context, fraud models.Fraud) error {
	msg, err := json.Marshal(FraudCreatedEvent{Type: EventFraudCreated, Fraud: fraud})
	if err != nil {
		return fmt.Errorf("encode fraud event: %w", err)
	}
	if err := h.m.Broadcast(msg); err != nil {
		return fmt.Errorf("broadcast fraud %d: %w", fraud.ID, err)
	}
	return nil
}

// Close disconnects every session.
func (h *Hub) Close() error {
	return h.m.Close()
}

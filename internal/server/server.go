package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/alfredjeanlab/ganttview/internal/events"
	"github.com/alfredjeanlab/ganttview/internal/store"
)

// GanttServer serves the HTTP API backed by the given store and publisher.
type GanttServer struct {
	store     store.Store
	publisher events.Publisher
	sseHub    *sseHub
}

// NewGanttServer returns a new GanttServer backed by the given store and publisher.
func NewGanttServer(s store.Store, p events.Publisher) *GanttServer {
	return &GanttServer{
		store:     s,
		publisher: p,
		sseHub:    newSSEHub(),
	}
}

// publish emits an event to NATS and fans it out to connected SSE clients.
// Both operations are best-effort; failures are logged but do not block the caller.
func (s *GanttServer) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
	s.broadcastEvent(topic, event)
}

// broadcastEvent fans an event out to SSE clients.
func (s *GanttServer) broadcastEvent(topic string, event any) {
	if s.sseHub == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("failed to marshal event for SSE broadcast", "topic", topic, "error", err)
		return
	}
	s.sseHub.broadcast(topic, payload)
}

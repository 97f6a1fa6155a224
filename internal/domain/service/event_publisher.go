package service

import (
	"context"
	"time"
)

// TodoEventType names a todo lifecycle transition.
type TodoEventType string

const (
	TodoEventCreated TodoEventType = "todo.created"
	TodoEventUpdated TodoEventType = "todo.updated"
	TodoEventDeleted TodoEventType = "todo.deleted"
)

// TodoEvent describes a committed change to a todo.
type TodoEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       TodoEventType `json:"type"`
	TodoID     string        `json:"todo_id"`
	UserID     string        `json:"user_id"`
	Completed  bool          `json:"completed"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTodoEvent publishes a todo lifecycle event
	PublishTodoEvent(ctx context.Context, event *TodoEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

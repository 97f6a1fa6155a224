package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todolist/config"
	"todolist/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishTodoEvent(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	event := &service.TodoEvent{
		RequestID:  "req-1",
		Type:       service.TodoEventCreated,
		TodoID:     "todo-1",
		UserID:     "user-1",
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishTodoEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "todo.created", received.Message.Attributes["type"])
	assert.Equal(t, "todo-1", received.Message.Attributes["todo_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.TodoEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, service.TodoEventCreated, decoded.Type)
	assert.Equal(t, "user-1", decoded.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishTodoEvent(context.Background(), &service.TodoEvent{Type: service.TodoEventDeleted})
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: newTestLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishTodoEvent(context.Background(), &service.TodoEvent{Type: service.TodoEventUpdated}))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9999/events"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: ProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: ProviderGoogle}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.ErrorContains(t, err, "unknown pubsub provider")
}

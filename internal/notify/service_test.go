package notify

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"fitclub/internal/logger"
	"fitclub/internal/store"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init()
}

func TestService_Notify_QueuesEvent(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "notifications")

	ev := store.Event{
		Type:       store.EventClassBooked,
		EntityID:   "c1",
		EntityName: "Morning Yoga",
		OccurredAt: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
	}

	mock.Regexp().ExpectLPush("notifications", regexp.QuoteMeta(`{"event"`)+".*").SetVal(1)

	svc.Notify(context.Background(), ev)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Notify_QueueFailureIsSwallowed(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "notifications")

	mock.Regexp().ExpectLPush("notifications", ".*").SetErr(assert.AnError)

	// Must not panic or propagate: delivery is best-effort.
	svc.Notify(context.Background(), store.Event{Type: store.EventGoalUpdated})
}

func TestService_QueueLength(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "notifications")

	mock.ExpectLLen("notifications").SetVal(3)

	assert.Equal(t, int64(3), svc.QueueLength(context.Background()))
}

func TestJob_RoundTrip(t *testing.T) {
	original := job{
		Event: store.Event{
			Type:     store.EventWorkoutLogged,
			EntityID: "",
		},
		Tries:   1,
		Created: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Event.Type, decoded.Event.Type)
	assert.Equal(t, original.Tries, decoded.Tries)
}

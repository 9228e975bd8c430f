// Package notify queues store events for out-of-band delivery (push
// reminders, achievement messages). The store fires and forgets; a queue or
// delivery failure never fails the operation that produced the event.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"fitclub/internal/logger"
	"fitclub/internal/metrics"
	"fitclub/internal/store"

	"github.com/redis/go-redis/v9"
)

const maxTries = 3

type job struct {
	Event   store.Event `json:"event"`
	Tries   int         `json:"tries"`
	Created time.Time   `json:"created"`
}

type Service struct {
	redis    *redis.Client
	queueKey string
}

func New(redisAddr, queueKey string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		queueKey: queueKey,
	}
}

// NewWithClient wraps an existing client, used by tests.
func NewWithClient(client *redis.Client, queueKey string) *Service {
	return &Service{redis: client, queueKey: queueKey}
}

// Notify implements store.Notifier.
func (s *Service) Notify(ctx context.Context, ev store.Event) {
	data, err := json.Marshal(job{Event: ev, Created: time.Now()})
	if err != nil {
		metrics.RecordNotificationQueued(string(ev.Type), "failed")
		logger.Errorf("Failed to marshal notification event: %v", err)
		return
	}

	if err := s.redis.LPush(ctx, s.queueKey, string(data)).Err(); err != nil {
		metrics.RecordNotificationQueued(string(ev.Type), "failed")
		logger.Errorf("Failed to queue notification %s: %v", ev.Type, err)
		return
	}

	metrics.RecordNotificationQueued(string(ev.Type), "queued")
	logger.Debug("Notification queued", "type", ev.Type, "entity", ev.EntityID)
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, s.queueKey).Result()
	if err != nil {
		return
	}

	var j job
	if err := json.Unmarshal([]byte(result[1]), &j); err != nil {
		logger.Errorf("Bad notification data: %v", err)
		return
	}

	j.Tries++
	if err := s.deliver(j); err != nil {
		logger.Errorf("Failed to deliver notification %s: %v", j.Event.Type, err)

		if j.Tries < maxTries {
			data, _ := json.Marshal(j)
			s.redis.LPush(context.Background(), s.queueKey, data)
		} else {
			s.saveFailed(j, err)
		}
		return
	}
}

// deliver hands the event to whatever scheduler is attached. The base
// service only logs; a push-notification transport plugs in here.
func (s *Service) deliver(j job) error {
	logger.Info("Notification delivered",
		"type", j.Event.Type,
		"entity_id", j.Event.EntityID,
		"entity_name", j.Event.EntityName,
	)
	return nil
}

func (s *Service) saveFailed(j job, err error) {
	failed := map[string]interface{}{
		"job":   j,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), s.queueKey+":failed", data)
	logger.Errorf("Notification moved to failed queue: %s", j.Event.Type)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, s.queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

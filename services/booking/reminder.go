package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

// TypeReminderSend is the asynq task type consumed by the reminder worker.
const TypeReminderSend = "reminder:send"

// AsynqReminderQueue enqueues reminder tasks onto the Redis-backed queue.
type AsynqReminderQueue struct {
	client *asynq.Client
}

// NewAsynqReminderQueue creates a reminder queue client from app config.
func NewAsynqReminderQueue() *AsynqReminderQueue {
	return &AsynqReminderQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

func (q *AsynqReminderQueue) EnqueueReminder(payload models.ReminderPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, data)
	if _, err := q.client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

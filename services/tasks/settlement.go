package tasks

import (
	"encoding/json"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const TypeSettlePayment = "payment:settle"

// NewSettlementTask builds the retryable task that finishes recording a
// payment. The task id is derived from the payment so a payment is queued
// at most once at a time.
func NewSettlementTask(payload models.SettlementPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSettlePayment, b)
	opts := []asynq.Option{
		asynq.TaskID("settle:" + payload.PaymentID),
		asynq.MaxRetry(10),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// RedisOpt points asynq at the queue database.
func RedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}

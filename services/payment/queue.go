package payment

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/models"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
)

// SettlementQueue schedules a retry of the booking update for a payment.
type SettlementQueue interface {
	EnqueueSettlement(ctx context.Context, paymentID string) error
}

// AsynqSettlementQueue enqueues settlement tasks on Redis via asynq.
type AsynqSettlementQueue struct {
	client *asynq.Client
}

func NewAsynqSettlementQueue(client *asynq.Client) *AsynqSettlementQueue {
	return &AsynqSettlementQueue{client: client}
}

func (q *AsynqSettlementQueue) EnqueueSettlement(ctx context.Context, paymentID string) error {
	task, opts, err := tasks.NewSettlementTask(models.SettlementPayload{PaymentID: paymentID})
	if err != nil {
		return fmt.Errorf("failed to build settlement task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue settlement for %s: %w", paymentID, err)
	}
	return nil
}

package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/services/tasks"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Settler finishes a recorded payment.
type Settler interface {
	Settle(ctx context.Context, paymentID string) error
}

// NewSettlementServer builds the asynq server that consumes settlement tasks.
func NewSettlementServer(cfg *config.Config, logger *zap.Logger) *asynq.Server {
	return asynq.NewServer(
		tasks.RedisOpt(cfg),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
}

// NewSettlementMux routes settlement tasks to settler.
func NewSettlementMux(settler Settler, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSettlePayment, handleSettlementTask(settler, logger))
	return mux
}

// StartSettlementWorker starts srv in the background, retrying with a
// growing backoff when Redis is not reachable yet.
func StartSettlementWorker(srv *asynq.Server, mux *asynq.ServeMux, logger *zap.Logger) error {
	const maxAttempts = 5

	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err := srv.Start(mux)
		if err == nil {
			logger.Info("Settlement worker started")
			return nil
		}
		logger.Warn("Failed to start settlement worker",
			zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
		if attempts == maxAttempts {
			return fmt.Errorf("settlement worker did not start: %w", err)
		}
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}
	return nil
}

func handleSettlementTask(settler Settler, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SettlementPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid settlement payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		err := settler.Settle(ctx, p.PaymentID)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, utils.ErrNotFound), errors.Is(err, utils.ErrInvalidInput):
			logger.Error("Settlement cannot succeed, dropping task", zap.String("paymentID", p.PaymentID), zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		default:
			logger.Warn("Settlement failed, will retry", zap.String("paymentID", p.PaymentID), zap.Error(err))
			return err
		}
	}
}

package worker

import (
	"context"
	"fmt"

	"github.com/devlupca-cloud/njob-creator-sub000/core/config"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"

	"github.com/hibiken/asynq"
)

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient returns an asynq client for enqueueing background tasks.
func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

// NewServer returns an asynq server; handlers are registered on the returned mux.
func NewServer(cfg *config.Config) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(redisOpt(cfg.Redis), asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Worker:TaskFailed", "type", task.Type(), "error", err)
		}),
	})
	return srv, asynq.NewServeMux()
}

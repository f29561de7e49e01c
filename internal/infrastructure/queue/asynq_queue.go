package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/PHedro/recipes/internal/pkg/config"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"github.com/hibiken/asynq"
)

type asynqClient struct {
	client *asynq.Client
}

// NewAsynqClient creates an asynq-backed Client from a redis:// URL. The
// connection is established lazily on first enqueue.
func NewAsynqClient(redisURL string) (Client, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("asynq: parse redis url: %w", err)
	}
	return &asynqClient{client: asynq.NewClient(opt)}, nil
}

func (a *asynqClient) Enqueue(ctx context.Context, task Task, opts ...EnqueueOption) (string, error) {
	if task.Type == "" {
		return "", errors.New("asynq: task type is required")
	}

	var asynqOpts []asynq.Option
	for _, op := range opts {
		if op.Queue != "" {
			asynqOpts = append(asynqOpts, asynq.Queue(op.Queue))
		}
		if op.ProcessIn > 0 {
			asynqOpts = append(asynqOpts, asynq.ProcessIn(op.ProcessIn))
		}
		if op.MaxRetry > 0 {
			asynqOpts = append(asynqOpts, asynq.MaxRetry(op.MaxRetry))
		}
		if op.UniqueTTL > 0 {
			asynqOpts = append(asynqOpts, asynq.Unique(op.UniqueTTL))
		}
	}

	info, err := a.client.EnqueueContext(ctx, asynq.NewTask(task.Type, task.Payload), asynqOpts...)
	if err != nil {
		return "", fmt.Errorf("asynq: enqueue %s: %w", task.Type, err)
	}
	return info.ID, nil
}

func (a *asynqClient) Close() error {
	return a.client.Close()
}

type asynqServer struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewAsynqServer creates an asynq-backed Server consuming the queues
// configured in the worker settings. Handler failures are logged and the
// task is left to asynq's retry policy.
func NewAsynqServer(settings config.QueueSettings, logger logger.Logger) (Server, error) {
	opt, err := asynq.ParseRedisURI(settings.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("asynq: parse redis url: %w", err)
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: settings.Concurrency,
		Queues:      settings.Queues,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error(fmt.Sprintf("task %s failed: %v", task.Type(), err))
		}),
	})

	return &asynqServer{server: srv, mux: asynq.NewServeMux()}, nil
}

func (s *asynqServer) Register(taskType string, h Handler) {
	s.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		return h(ctx, Task{Type: t.Type(), Payload: t.Payload()})
	})
}

func (s *asynqServer) Run(ctx context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return fmt.Errorf("asynq: start server: %w", err)
	}
	<-ctx.Done()
	s.server.Shutdown()
	return nil
}

func (s *asynqServer) Stop(ctx context.Context) error {
	s.server.Shutdown()
	return nil
}

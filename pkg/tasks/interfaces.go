package tasks

import "github.com/hibiken/asynq"

// TaskEnqueuer is the interface handlers use to hand work to the
// background worker. Implemented by asynq.Client; mocked in tests.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

const exportRetention = 24 * time.Hour

// TaskEnqueuer is the part of asynq.Client the enqueuer uses.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Enqueuer struct {
	client TaskEnqueuer
}

func NewEnqueuer(client TaskEnqueuer) *Enqueuer {
	return &Enqueuer{client: client}
}

func NewExportTask(payload transfer.ExportPayload) (*asynq.Task, error) {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeExportCalendar, taskPayload), nil
}

func (e *Enqueuer) EnqueueExport(ctx context.Context, payload transfer.ExportPayload) error {
	task, err := NewExportTask(payload)
	if err != nil {
		return err
	}

	_, err = e.client.EnqueueContext(ctx, task,
		asynq.TaskID(payload.ExportID),
		asynq.MaxRetry(3),
		asynq.Retention(exportRetention),
	)
	if err != nil {
		return err
	}

	slog.Info("export task enqueued", "export_id", payload.ExportID, "week", payload.Week)
	return nil
}

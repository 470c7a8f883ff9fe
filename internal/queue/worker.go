package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/fluxora/internal/transfer"
)

func (j *Queue) HandleExportTask(ctx context.Context, task *asynq.Task) error {
	var payload transfer.ExportPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode export payload: %v: %w", err, asynq.SkipRetry)
	}

	url, err := j.ex.Store(ctx, payload)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	slog.Info("calendar export stored", "export_id", payload.ExportID, "url", url)
	return nil
}

func (j *Queue) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskTypeExportCalendar, j.HandleExportTask)
	return mux
}

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/maheshrc27/fluxora/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task, opts)
	return &asynq.TaskInfo{ID: "t-1"}, args.Error(0)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Build(ctx context.Context, exportID string, reference models.Date) (*service.CalendarExport, error) {
	args := m.Called(ctx, exportID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CalendarExport), args.Error(1)
}

func (m *MockExportService) Export(ctx context.Context, reference *models.Date) (*service.ExportResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

func (m *MockExportService) Store(ctx context.Context, payload transfer.ExportPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func TestEnqueuer_EnqueueExport(t *testing.T) {
	client := new(MockClient)
	client.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
		var p transfer.ExportPayload
		return task.Type() == TaskTypeExportCalendar &&
			json.Unmarshal(task.Payload(), &p) == nil &&
			p.ExportID == "e-1" && p.Week == "2026-10-12"
	}), mock.Anything).Return(nil)

	err := NewEnqueuer(client).EnqueueExport(context.Background(), transfer.ExportPayload{ExportID: "e-1", Week: "2026-10-12"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestEnqueuer_PropagatesError(t *testing.T) {
	client := new(MockClient)
	client.On("EnqueueContext", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	err := NewEnqueuer(client).EnqueueExport(context.Background(), transfer.ExportPayload{ExportID: "e-1"})
	assert.Error(t, err)
}

func TestHandleExportTask(t *testing.T) {
	ex := new(MockExportService)
	payload := transfer.ExportPayload{ExportID: "e-1", Week: "2026-10-12"}
	ex.On("Store", mock.Anything, payload).Return("https://cdn.example.com/exports/e-1.json", nil)

	task, err := NewExportTask(payload)
	require.NoError(t, err)
	require.NoError(t, NewQueue(ex).HandleExportTask(context.Background(), task))
	ex.AssertExpectations(t)
}

func TestHandleExportTask_BadPayloadSkipsRetry(t *testing.T) {
	ex := new(MockExportService)
	err := NewQueue(ex).HandleExportTask(context.Background(), asynq.NewTask(TaskTypeExportCalendar, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	ex.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestHandleExportTask_StoreFailure(t *testing.T) {
	ex := new(MockExportService)
	ex.On("Store", mock.Anything, mock.Anything).Return("", service.ErrStorageNotConfigured)

	task, err := NewExportTask(transfer.ExportPayload{ExportID: "e-2", Week: "2026-10-12"})
	require.NoError(t, err)
	assert.ErrorIs(t, NewQueue(ex).HandleExportTask(context.Background(), task), service.ErrStorageNotConfigured)
}

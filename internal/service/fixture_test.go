package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"
	"time"

	config "github.com/maheshrc27/fluxora/configs"
	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
	"github.com/maheshrc27/fluxora/internal/seed"
	"github.com/maheshrc27/fluxora/internal/transfer"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Monday 2026-10-12, before the first seeded post.
var fixedNow = time.Date(2026, time.October, 12, 8, 0, 0, 0, time.UTC)

func clockAt(t time.Time) Clock { return func() time.Time { return t } }

type fixture struct {
	stores  seed.Stores
	user    models.User
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f, err := seed.Load("")
	require.NoError(t, err)
	ds, err := f.Resolve(models.DateOf(fixedNow), fixedNow)
	require.NoError(t, err)

	st := seed.Stores{
		Slots:     repository.NewSlotRepository(),
		Content:   repository.NewContentRepository(),
		Accounts:  repository.NewSocialAccountRepository(),
		Campaigns: repository.NewCampaignRepository(),
		Analytics: repository.NewAnalyticsRepository(models.DateOf(fixedNow)),
	}
	ds.Apply(context.Background(), st)
	return &fixture{stores: st, user: ds.User, metrics: metrics.New()}
}

func (f *fixture) schedule() ScheduleService {
	return NewScheduleService(f.stores.Slots, f.stores.Content, f.metrics, clockAt(fixedNow), time.UTC)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) URL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueExport(ctx context.Context, payload transfer.ExportPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// fileHeader round-trips body through a multipart form so the header can be opened.
func fileHeader(t *testing.T, name string, body []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func testConfig() config.Config {
	return config.Config{SecretKey: "test-secret", CookieName: "fluxora_session"}
}

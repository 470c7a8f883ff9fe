package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/fluxora/configs"
	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/maheshrc27/fluxora/internal/repository"
	"github.com/maheshrc27/fluxora/internal/seed"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 12, 8, 0, 0, 0, time.UTC)

type testServer struct {
	app    *fiber.App
	cfg    config.Config
	stores seed.Stores
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	now := func() time.Time { return fixedNow }
	today := models.DateOf(fixedNow)

	f, err := seed.Load("")
	require.NoError(t, err)
	ds, err := f.Resolve(today, fixedNow)
	require.NoError(t, err)
	st := seed.Stores{
		Slots:     repository.NewSlotRepository(),
		Content:   repository.NewContentRepository(),
		Accounts:  repository.NewSocialAccountRepository(),
		Campaigns: repository.NewCampaignRepository(),
		Analytics: repository.NewAnalyticsRepository(today),
	}
	ds.Apply(ctx, st)

	cfg := config.Config{
		FrontendURL: "http://localhost:5173",
		SecretKey:   "test-secret",
		CookieName:  "fluxora_session",
	}
	m := metrics.New()
	schedule := service.NewScheduleService(st.Slots, st.Content, m, now, time.UTC)

	app := NewApp(cfg, Services{
		Auth:      service.NewAuthService(cfg, ds.User),
		Schedule:  schedule,
		Content:   service.NewContentService(st.Content, st.Slots, nil, now),
		Preview:   service.NewPreviewService(m),
		Export:    service.NewExportService(schedule, st.Content, nil, nil, m, now),
		Dashboard: service.NewDashboardService(st.Slots, st.Content, st.Accounts, st.Analytics, now, time.UTC),
		Accounts:  service.NewAccountService(st.Accounts, now),
		Campaigns: service.NewCampaignService(st.Campaigns, now),
		Analytics: service.NewAnalyticsService(st.Analytics),
	}, m)
	return &testServer{app: app, cfg: cfg, stores: st}
}

func (s *testServer) do(t *testing.T, method, target, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestCalendarWeek(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/calendar", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Footer string `json:"footer"`
		Grid   struct {
			Start     models.Date `json:"week_start"`
			TimeSlots []string    `json:"time_slots"`
			Rows      []struct {
				Cells []struct {
					Posts []models.ScheduleSlot `json:"posts"`
				} `json:"cells"`
			} `json:"rows"`
		} `json:"grid"`
	}
	decode(t, resp, &body)

	assert.Equal(t, "3 posts scheduled this week", body.Footer)
	assert.Equal(t, models.NewDate(2026, time.October, 12), body.Grid.Start)
	assert.Len(t, body.Grid.TimeSlots, 10)
	require.Len(t, body.Grid.Rows, 10)
	assert.Len(t, body.Grid.Rows[0].Cells, 7)
	assert.Equal(t, "1", body.Grid.Rows[0].Cells[0].Posts[0].ID)
}

func TestCalendarWeek_BadParam(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/calendar?week=next", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSlotsDrag(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/slots/drag",
		`{"draggable_id":"2","source":"2026-10-13T14:00","destination":"2026-10-16T09:00"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Outcome string `json:"outcome"`
		Footer  string `json:"footer"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "relocated", body.Outcome)
	assert.Equal(t, "3 posts scheduled this week", body.Footer)

	moved := s.stores.Slots.FindBySlot(context.Background(), models.NewDate(2026, time.October, 16), "09:00")
	require.Len(t, moved, 1)
	assert.Equal(t, "2", moved[0].ID)
}

func TestSlotsDrag_OutsideGridAndUnknown(t *testing.T) {
	s := newTestServer(t)
	before := s.stores.Slots.List(context.Background())

	resp := s.do(t, http.MethodPost, "/api/slots/drag", `{"draggable_id":"2","source":"2026-10-13T14:00","destination":null}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Outcome string `json:"outcome"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "cancelled", body.Outcome)
	assert.Equal(t, before, s.stores.Slots.List(context.Background()))

	resp = s.do(t, http.MethodPost, "/api/slots/drag", `{"draggable_id":"nope","destination":"2026-10-16T09:00"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, before, s.stores.Slots.List(context.Background()))
}

func TestSlotsDrag_BadWeekLeavesStore(t *testing.T) {
	s := newTestServer(t)
	before := s.stores.Slots.List(context.Background())

	resp := s.do(t, http.MethodPost, "/api/slots/drag?week=garbage",
		`{"draggable_id":"2","source":"2026-10-13T14:00","destination":"2026-10-16T09:00"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, before, s.stores.Slots.List(context.Background()))
}

func TestRemove_MissingID(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/api/slots/remove", "/api/content/remove"} {
		resp := s.do(t, http.MethodPost, target, "")
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, target)

		var body struct {
			Fields map[string]string `json:"fields"`
		}
		decode(t, resp, &body)
		assert.Contains(t, body.Fields, "id", target)
	}
	assert.Len(t, s.stores.Slots.List(context.Background()), 3)
}

func TestSlotsCreateAndRemove(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/slots/create", `{"date":"2026-10-17","time":"12:00","platform":"youtube"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var slot models.ScheduleSlot
	decode(t, resp, &slot)

	resp = s.do(t, http.MethodPost, "/api/slots/remove?id="+slot.ID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = s.do(t, http.MethodPost, "/api/slots/remove?id="+slot.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/slots/create", `{"date":"2026-10-17","time":"12:00","platform":"myspace"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContentCreate_ValidationFields(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/content/create", `{"type":"image","title":"","platforms":[]}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Fields, "title")
	assert.Contains(t, body.Fields, "platforms")
}

func TestContentCreate_Scheduled(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/content/create",
		`{"type":"text","title":"Launch","caption":"We are live","platforms":["linkedin","facebook"],"schedule":{"date":"2026-10-15","time":"10:00"}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item models.ContentItem
	decode(t, resp, &item)
	assert.Equal(t, models.ContentStatusScheduled, item.Status)

	resp = s.do(t, http.MethodGet, "/api/calendar", "")
	var week struct {
		Footer string `json:"footer"`
	}
	decode(t, resp, &week)
	assert.Equal(t, "5 posts scheduled this week", week.Footer)
}

func TestContentMedia_MissingFile(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/content/media", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContentMedia_StorageUnavailable(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/content/media", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestPreview_JSON(t *testing.T) {
	s := newTestServer(t)

	caption := strings.Repeat("x", 300)
	resp := s.do(t, http.MethodPost, "/api/preview", `{"platforms":["twitter","instagram"],"caption":"`+caption+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var previews []struct {
		Platform  string `json:"platform"`
		Caption   string `json:"caption"`
		Truncated bool   `json:"truncated"`
		CharCount int    `json:"char_count"`
	}
	decode(t, resp, &previews)
	require.Len(t, previews, 2)
	assert.Equal(t, "twitter", previews[0].Platform)
	assert.Equal(t, strings.Repeat("x", 280)+"...", previews[0].Caption)
	assert.True(t, previews[0].Truncated)
	assert.Equal(t, 300, previews[0].CharCount)
	assert.False(t, previews[1].Truncated)
}

func TestPreview_HTML(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/preview/html", `{"platform":"linkedin","caption":"Hello <b>world</b>"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "(18/3000 chars)", strings.TrimSpace(doc.Find(".char-counter").First().Text()))
	assert.Equal(t, 0, doc.Find("b").Length())
}

func TestPreview_UnknownPlatform(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/preview", `{"platform":"myspace","caption":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSession(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/me", "")
	var anon models.User
	decode(t, resp, &anon)
	assert.Equal(t, "Alex Morgan", anon.Name)

	resp = s.do(t, http.MethodPost, "/login", `{"name":"Sam Rivera","email":"sam@example.com"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == s.cfg.CookieName {
			session = c
		}
	}
	require.NotNil(t, session)

	resp = s.do(t, http.MethodGet, "/api/me", "", session)
	var me models.User
	decode(t, resp, &me)
	assert.Equal(t, "Sam Rivera", me.Name)

	resp = s.do(t, http.MethodGet, "/api/dashboard", "", session)
	var dash service.Dashboard
	decode(t, resp, &dash)
	assert.Equal(t, "Welcome back, Sam!", dash.Greeting)

	resp = s.do(t, http.MethodGet, "/api/me", "", &http.Cookie{Name: s.cfg.CookieName, Value: "garbage"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &me)
	assert.Equal(t, "Alex Morgan", me.Name)
}

func TestExport_Download(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/calendar/export?week=2026-10-14", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "calendar-2026-10-12.json")

	var doc service.CalendarExport
	decode(t, resp, &doc)
	assert.Len(t, doc.Posts, 3)
}

func TestCampaignsAndAnalytics(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/campaigns/activate?id=campaign-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/campaigns", "")
	var list struct {
		Campaigns []models.Campaign `json:"campaigns"`
		Active    *models.Campaign  `json:"active"`
	}
	decode(t, resp, &list)
	assert.Len(t, list.Campaigns, 1)
	require.NotNil(t, list.Active)
	assert.Equal(t, "campaign-1", list.Active.ID)

	resp = s.do(t, http.MethodPost, "/api/campaigns/activate?id=missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/analytics?platform=instagram", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report service.AnalyticsReport
	decode(t, resp, &report)
	require.Len(t, report.Data, 1)
	assert.Equal(t, 14100, report.Totals.Impressions)
}

func TestAccountsList(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/accounts", "")
	var accounts []models.SocialAccount
	decode(t, resp, &accounts)
	assert.Len(t, accounts, 5)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/api/preview", `{"platform":"facebook","caption":"hi"}`)

	resp := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `fluxora_previews_rendered_total{platform="facebook"} 1`)
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/life-reset-backend/internal/apperrors"
	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

type fakeNotion struct {
	createCalls int
	statusCalls int
	databaseIDs []string
	docs        []Document
	pageID      string
	title       string
	err         error
}

func (f *fakeNotion) CreatePage(_ context.Context, databaseID string, doc Document) (string, error) {
	f.createCalls++
	f.databaseIDs = append(f.databaseIDs, databaseID)
	f.docs = append(f.docs, doc)
	if f.err != nil {
		return "", f.err
	}
	return f.pageID, nil
}

func (f *fakeNotion) DatabaseTitle(_ context.Context, _ string) (string, error) {
	f.statusCalls++
	if f.err != nil {
		return "", f.err
	}
	return f.title, nil
}

type fakeCache struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *fakeCache) GetString(_ context.Context, key string) (string, bool, error) {
	if c.err != nil {
		return "", false, c.err
	}
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *fakeCache) SetStringWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.values[key] = value
	c.ttls[key] = ttl
	return nil
}

type fakeRecorder struct {
	events []*models.SyncEvent
	err    error
}

func (r *fakeRecorder) Record(_ context.Context, event *models.SyncEvent) error {
	r.events = append(r.events, event)
	return r.err
}

var syncNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func newTestSyncer(api *fakeNotion) *NotionSyncer {
	s := NewNotionSyncer(api, "db-123")
	s.now = func() time.Time { return syncNow }
	return s
}

func submit(t *testing.T, s *NotionSyncer, kind, data string) (SyncResult, error) {
	t.Helper()
	return s.Submit(context.Background(), SyncRequest{Type: kind, Data: json.RawMessage(data), UserID: "u1"})
}

func propertyValue(t *testing.T, doc Document, name string) string {
	t.Helper()
	p, ok := doc.Property(name)
	require.True(t, ok, "missing property %q", name)
	return p.Value
}

func TestNotionSyncer_UnknownTypeMakesNoCalls(t *testing.T) {
	api := &fakeNotion{pageID: "page-1"}
	s := newTestSyncer(api)

	_, err := submit(t, s, "task", `{"title":"x"}`)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.Equal(t, "Invalid sync type", apperrors.PublicMessage(err))
	assert.Equal(t, 0, api.createCalls)
}

func TestNotionSyncer_UnconfiguredMakesNoCalls(t *testing.T) {
	api := &fakeNotion{pageID: "page-1"}
	s := NewNotionSyncer(api, "")

	_, err := submit(t, s, "mind-reframe", `{"dontWant":["stress"],"want":[]}`)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindConfiguration))
	assert.Equal(t, notionNotConfigured, apperrors.PublicMessage(err))
	assert.Equal(t, 0, api.createCalls)

	_, err = NewNotionSyncer(nil, "db-123").Status(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.KindConfiguration))
}

func TestNotionSyncer_ConfigurationCheckedBeforeType(t *testing.T) {
	_, err := submit(t, NewNotionSyncer(nil, ""), "bogus", `{}`)
	assert.True(t, apperrors.Is(err, apperrors.KindConfiguration))
}

func TestNotionSyncer_MalformedData(t *testing.T) {
	api := &fakeNotion{pageID: "page-1"}
	s := newTestSyncer(api)

	_, err := submit(t, s, "goals", `["not","an","object"]`)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = submit(t, s, "daily-log", `{"date":"yesterday"}`)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	assert.Equal(t, 0, api.createCalls)
}

func TestNotionSyncer_DailyLog(t *testing.T) {
	api := &fakeNotion{pageID: "page-1"}
	s := newTestSyncer(api)

	res, err := submit(t, s, "daily-log", `{
		"date": "2024-01-05",
		"morningActivities": ["meditate", "run"],
		"feelings": "calm",
		"aiRecommendations": ["sleep earlier"]
	}`)
	require.NoError(t, err)
	assert.Equal(t, "page-1", res.ExternalID)
	assert.Equal(t, SyncDailyLog, res.Kind)
	require.Equal(t, 1, api.createCalls)
	assert.Equal(t, "db-123", api.databaseIDs[0])

	doc := api.docs[0]
	assert.Equal(t, "Daily Reflection - 1/5/2024", doc.Title())
	assert.Equal(t, "Daily Log", propertyValue(t, doc, "Type"))
	assert.Equal(t, "2024-01-05", propertyValue(t, doc, "Date"))
	assert.Equal(t, `["meditate","run"]`, propertyValue(t, doc, "Morning Activities"))
	assert.Equal(t, "[]", propertyValue(t, doc, "Afternoon Activities"))
	assert.Equal(t, "[]", propertyValue(t, doc, "Evening Activities"))
	assert.Equal(t, "calm", propertyValue(t, doc, "Feelings"))
	assert.Equal(t, `["sleep earlier"]`, propertyValue(t, doc, "AI Recommendations"))
	assert.Equal(t, "Completed", propertyValue(t, doc, "Status"))
}

func TestNotionSyncer_AllKindsMapEveryField(t *testing.T) {
	cases := []struct {
		kind   string
		data   string
		title  string
		fields map[string]string
	}{
		{
			kind:  "daily-log",
			data:  `{}`,
			title: "Daily Reflection - ",
			fields: map[string]string{
				"Type": "Daily Log", "Date": "", "Morning Activities": "[]", "Afternoon Activities": "[]",
				"Evening Activities": "[]", "Feelings": "", "AI Recommendations": "[]", "Status": "Completed",
			},
		},
		{
			kind:  "goals",
			data:  `{"oneYearGoal":"ship it"}`,
			title: "Goals Update - 3/9/2024",
			fields: map[string]string{
				"Type": "Goals", "10-Year Goal": "", "1-Year Goal": "ship it", "3-Month Goal": "", "Status": "Active",
			},
		},
		{
			kind:  "weekly-review",
			data:  `{"weekStart":"2024-03-04","gratitude":"family","goal":"rest"}`,
			title: "Weekly Review - Week of 3/4/2024",
			fields: map[string]string{
				"Type": "Weekly Review", "Week Start": "2024-03-04", "Went Well": "", "Didn't Go Well": "",
				"Gratitude": "family", "Next Week Goal": "rest", "Focus Projects": "", "Status": "Completed",
			},
		},
		{
			kind:  "mind-reframe",
			data:  `{"dontWant":["stress"],"want":[]}`,
			title: "Mind Reframe - 3/9/2024",
			fields: map[string]string{
				"Type": "Mind Reframe", "Don't Want": `["stress"]`, "Want": "[]", "Status": "Active",
			},
		},
		{
			kind:  "growth-plan",
			data:  `null`,
			title: "Growth Plan - 3/9/2024",
			fields: map[string]string{
				"Type": "Growth Plan", "Skills Needed": "[]", "Distractions": "[]", "Status": "Active",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			api := &fakeNotion{pageID: "page-" + tc.kind}
			_, err := submit(t, newTestSyncer(api), tc.kind, tc.data)
			require.NoError(t, err)
			require.Len(t, api.docs, 1)

			doc := api.docs[0]
			assert.Equal(t, tc.title, doc.Title())
			// title plus every mapped field, nothing else
			assert.Len(t, doc.Properties, len(tc.fields)+1)
			for name, want := range tc.fields {
				assert.Equal(t, want, propertyValue(t, doc, name), name)
			}
		})
	}
}

func TestNotionSyncer_UpstreamFailure(t *testing.T) {
	api := &fakeNotion{err: errors.New("401 unauthorized: token secret_abc")}
	recorder := &fakeRecorder{}
	s := newTestSyncer(api).WithRecorder(recorder)

	_, err := submit(t, s, "goals", `{}`)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUpstream))
	assert.Equal(t, notionSyncFailed, apperrors.PublicMessage(err))
	assert.Equal(t, 1, api.createCalls)

	require.Len(t, recorder.events, 1)
	event := recorder.events[0]
	assert.False(t, event.Success)
	assert.Equal(t, notionSyncFailed, event.Error)
	assert.NotContains(t, event.Error, "secret_abc")
}

func TestNotionSyncer_RecordsHistory(t *testing.T) {
	api := &fakeNotion{pageID: "page-9"}
	recorder := &fakeRecorder{err: errors.New("mongo down")}
	s := newTestSyncer(api).WithRecorder(recorder)

	res, err := submit(t, s, "growth-plan", `{"skillsNeeded":["go"]}`)
	require.NoError(t, err, "recording failures do not fail the sync")
	assert.Equal(t, "page-9", res.ExternalID)

	_, err = submit(t, s, "nope", `{}`)
	require.Error(t, err)

	require.Len(t, recorder.events, 2)
	assert.Equal(t, &models.SyncEvent{
		CreatedAt:  syncNow,
		UserID:     "u1",
		Type:       "growth-plan",
		ExternalID: "page-9",
		Success:    true,
	}, recorder.events[0])
	assert.Equal(t, "Invalid sync type", recorder.events[1].Error)
}

func TestNotionSyncer_Status(t *testing.T) {
	api := &fakeNotion{title: "Life Reset"}
	cache := newFakeCache()
	s := newTestSyncer(api).WithStatusCache(cache)

	assert.Empty(t, s.LastKnownDestination(context.Background()))

	name, err := s.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Life Reset", name)
	assert.Equal(t, "Life Reset", cache.values["notion:database:db-123"])
	assert.Equal(t, NotionStatusTTL, cache.ttls["notion:database:db-123"])
	assert.Equal(t, "Life Reset", s.LastKnownDestination(context.Background()))

	// a cached name never stands in for the check itself
	api.err = errors.New("401 unauthorized: token revoked")
	_, err = s.Status(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUpstream))
	assert.Equal(t, 2, api.statusCalls)
	assert.Equal(t, 0, api.createCalls)
	assert.Equal(t, "Life Reset", s.LastKnownDestination(context.Background()))
}

func TestNotionSyncer_StatusUnknownTitleAndCacheErrors(t *testing.T) {
	api := &fakeNotion{}
	cache := newFakeCache()
	cache.err = errors.New("redis down")
	s := newTestSyncer(api).WithStatusCache(cache)

	name, err := s.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Unknown", name)
	assert.Empty(t, s.LastKnownDestination(context.Background()))
}

func TestNotionSyncer_StatusFailure(t *testing.T) {
	api := &fakeNotion{err: errors.New("object_not_found")}
	s := newTestSyncer(api)

	_, err := s.Status(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.KindUpstream))
	assert.Equal(t, notionStatusFailed, apperrors.PublicMessage(err))
}

func TestNotionProperties(t *testing.T) {
	doc := DailyLogPayload{Date: "2024-01-05", Feelings: strings.Repeat("é", notionTextLimit+5)}.Document(syncNow)

	props, err := notionProperties(doc)
	require.NoError(t, err)
	require.Len(t, props, len(doc.Properties))

	titleProp, ok := props["Name"].(notionapi.TitleProperty)
	require.True(t, ok)
	require.Len(t, titleProp.Title, 1)
	assert.Equal(t, "Daily Reflection - 1/5/2024", titleProp.Title[0].Text.Content)

	status, ok := props["Status"].(notionapi.SelectProperty)
	require.True(t, ok)
	assert.Equal(t, "Completed", status.Select.Name)

	date, ok := props["Date"].(dayProperty)
	require.True(t, ok)
	assert.Equal(t, notionapi.PropertyTypeDate, date.GetType())
	raw, err := json.Marshal(date)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":{"start":"2024-01-05"}}`, string(raw))

	feelings, ok := props["Feelings"].(notionapi.RichTextProperty)
	require.True(t, ok)
	require.Len(t, feelings.RichText, 2)
	assert.Len(t, []rune(feelings.RichText[1].Text.Content), 5)

	empty, err := notionProperties(DailyLogPayload{}.Document(syncNow))
	require.NoError(t, err)
	raw, err = json.Marshal(empty["Date"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":null}`, string(raw))
}

func TestNewNotionClient_EmptyToken(t *testing.T) {
	assert.Nil(t, NewNotionClient(""))
	assert.NotNil(t, NewNotionClient("secret_token"))
}

type countingTransport struct {
	calls  int
	bodies []string
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	body := ""
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(b)
	}
	c.bodies = append(c.bodies, body)
	return &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"0"}},
		Body:       io.NopCloser(strings.NewReader(`{"object":"error","status":429,"code":"rate_limited"}`)),
		Request:    req,
	}, nil
}

func TestNotionClient_RateLimitedCreateIsNotRetried(t *testing.T) {
	transport := &countingTransport{}
	api := NewNotionClient("secret_token", notionapi.WithHTTPClient(&http.Client{Transport: transport}))
	s := newTestSyncer(&fakeNotion{})
	s.api = api

	_, err := submit(t, s, "daily-log", `{"date":"2024-01-05","feelings":"calm"}`)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUpstream))
	assert.Equal(t, notionSyncFailed, apperrors.PublicMessage(err))

	require.Equal(t, 1, transport.calls)
	assert.Contains(t, transport.bodies[0], `"Date":{"date":{"start":"2024-01-05"}}`)
	assert.Contains(t, transport.bodies[0], `"database_id":"db-123"`)
}

func TestDecodeSyncPayload_NormalizesDates(t *testing.T) {
	p, err := DecodeSyncPayload("weekly-review", json.RawMessage(`{"weekStart":"2024-03-04T23:30:00-05:00"}`))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", p.(WeeklyReviewPayload).WeekStart)

	p, err = DecodeSyncPayload("daily-log", nil)
	require.NoError(t, err)
	assert.Equal(t, SyncDailyLog, p.Kind())
}

func TestSyncHistory_ListRequiresUser(t *testing.T) {
	_, err := (&SyncHistory{}).List(context.Background(), " ", 10)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestClampHistoryLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, ClampHistoryLimit(0))
	assert.Equal(t, 7, ClampHistoryLimit(7))
	assert.Equal(t, MaxHistoryLimit, ClampHistoryLimit(1000))
}

package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timebot/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, StaticToken("test-token"))
}

func TestClient_GetTimeEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/timecards", r.URL.Path)
		assert.Equal(t, "2024-01-08", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-01-14", r.URL.Query().Get("endDate"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"data": []map[string]interface{}{
					{"id": 1, "date": "2024-01-08", "startTime": "08:00", "endTime": "17:00", "status": "pending"},
				},
				"pagination": map[string]interface{}{"page": 2, "pageSize": 20, "total": 21, "totalPages": 2},
			},
		})
	})

	page, err := client.GetTimeEntries(context.Background(), ListParams{
		StartDate: "2024-01-08",
		EndDate:   "2024-01-14",
		Page:      2,
	})

	require.NoError(t, err)
	require.NotNil(t, page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(1), page.Data[0].ID)
	assert.Equal(t, 2, page.Pagination.Page)
}

func TestClient_CreateTimeEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/timecards", r.URL.Path)

		var body EntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-01-08", body.Date)
		assert.Equal(t, "08:00", body.StartTime)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id": 42, "date": body.Date, "startTime": body.StartTime,
				"endTime": body.EndTime, "status": "pending",
			},
		})
	})

	payload, err := client.CreateTimeEntry(context.Background(), EntryRequest{
		Date:      "2024-01-08",
		StartTime: "08:00",
		EndTime:   "17:00",
	})

	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, int64(42), payload.ID)
}

func TestClient_CreateTimeEntry_SuccessWithoutData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	payload, err := client.CreateTimeEntry(context.Background(), EntryRequest{
		Date:      "2024-01-08",
		StartTime: "08:00",
		EndTime:   "17:00",
	})

	// A success envelope with no data is not an error; the caller decides
	// what an absent payload means.
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestClient_EnvelopeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "entry overlaps an existing entry",
		})
	})

	payload, err := client.CreateTimeEntry(context.Background(), EntryRequest{
		Date:      "2024-01-08",
		StartTime: "08:00",
		EndTime:   "17:00",
	})

	assert.Nil(t, payload)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeRemote))
	assert.Contains(t, err.Error(), "entry overlaps an existing entry")
}

func TestClient_Non2xxStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "token expired",
		})
	})

	_, err := client.GetCurrentWeekTimecard(context.Background())

	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsType(errors.ErrorTypeRemote))
	status, ok := appErr.GetContext("status")
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestClient_Non2xxStatus_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.HealthCheck(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.HealthCheck(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeRemote))
	assert.Contains(t, err.Error(), "malformed response")
}

func TestClient_SubmitTimecard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/timecards/7/submit", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id": 7, "startDate": "2024-01-08", "endDate": "2024-01-14",
				"status": "submitted",
			},
		})
	})

	payload, err := client.SubmitTimecard(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, "submitted", payload.Status)
}

func TestClient_DeleteTimeEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/timecards/42", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Timecard deleted successfully",
		})
	})

	assert.NoError(t, client.DeleteTimeEntry(context.Background(), 42))
}

func TestClient_GetEntryStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/timecards/stats", r.URL.Path)
		assert.Equal(t, "2024-01-08", r.URL.Query().Get("startDate"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"totalHours": 45.0, "regularHours": 40.0, "overtimeHours": 5.0,
				"totalEntries": 5, "averageHoursPerDay": 9.0,
			},
		})
	})

	stats, err := client.GetEntryStats(context.Background(), "2024-01-08", "2024-01-14")

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 45.0, stats.TotalHours)
	assert.Equal(t, 5.0, stats.OvertimeHours)
	assert.Equal(t, 5, stats.TotalEntries)
}

func TestClient_NoTokenProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"status": "ok", "service": "timebot"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nil)

	health, err := client.HealthCheck(context.Background())

	require.NoError(t, err)
	require.NotNil(t, health)
	assert.Equal(t, "ok", health.Status)
}

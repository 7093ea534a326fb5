package mirror

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfarooq/murajaah/internal/hifz"
)

func testRecord() hifz.PostponedCycle {
	return hifz.PostponedCycle{
		CycleType:         "omv",
		Title:             "Old Memorization Review",
		Content:           "Juz 1 (pages 1-21)",
		OriginalDate:      hifz.MustParseDate("2024-03-10"),
		TargetDate:        hifz.MustParseDate("2024-03-11"),
		PostponedFromDate: hifz.MustParseDate("2024-03-10"),
	}
}

func TestClient_ReplicatePostpone(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotEvent postponementEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEvent))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token", "user-1")
	defer client.Close()

	err := client.ReplicatePostpone(context.Background(), testRecord())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/postponements", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, postponementEvent{
		UserID:            "user-1",
		CycleType:         "omv",
		Title:             "Old Memorization Review",
		Content:           "Juz 1 (pages 1-21)",
		OriginalDate:      "2024-03-10",
		TargetDate:        "2024-03-11",
		PostponedFromDate: "2024-03-10",
	}, gotEvent)
}

func TestClient_ReplicateUnpostpone(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "user-1")
	defer client.Close()

	err := client.ReplicateUnpostpone(context.Background(), testRecord())
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/postponements", gotPath)
}

func TestClient_NoTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "user-1")
	defer client.Close()

	require.NoError(t, client.ReplicatePostpone(context.Background(), testRecord()))
	assert.Empty(t, gotAuth)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "user-1")
	defer client.Close()

	err := client.ReplicatePostpone(context.Background(), testRecord())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestClient_ExhaustsRetries(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "user-1")
	defer client.Close()

	err := client.ReplicatePostpone(context.Background(), testRecord())
	require.Error(t, err)
	assert.Equal(t, int(defaultRetryAttempts), calls)
}

func TestClient_ClientErrorDoesNotRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "user-1")
	defer client.Close()

	err := client.ReplicatePostpone(context.Background(), testRecord())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsRetryableStatus(t *testing.T) {
	assert.True(t, isRetryableStatus(http.StatusInternalServerError))
	assert.True(t, isRetryableStatus(http.StatusBadGateway))
	assert.True(t, isRetryableStatus(http.StatusTooManyRequests))
	assert.False(t, isRetryableStatus(http.StatusBadRequest))
	assert.False(t, isRetryableStatus(http.StatusNotFound))
	assert.False(t, isRetryableStatus(http.StatusUnauthorized))
}

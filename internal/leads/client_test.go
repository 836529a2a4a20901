package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	service, endpoint string
	status            int
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeRecorder) ObserveExternal(service, endpoint string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{service, endpoint, status})
}

func TestSubmitWithoutEndpointAcknowledgesLocally(t *testing.T) {
	c := NewClient("")
	require.False(t, c.Forwarding())

	receipt, err := c.Submit(context.Background(), Lead{Name: " Ava ", Region: "US"})
	require.NoError(t, err)
	require.False(t, receipt.Forwarded)
	require.Equal(t, "received", receipt.Status)
	_, err = uuid.Parse(receipt.Reference)
	require.NoError(t, err)
}

func TestSubmitForwardsLead(t *testing.T) {
	var (
		gotKey  string
		gotPath string
		gotBody leadPayload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(idempotencyHeader)
		gotPath = r.URL.Path
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"reference":"crm-42","status":"queued"}`))
	}))
	defer srv.Close()

	rec := &fakeRecorder{}
	c := NewClient(srv.URL+"/hooks/", WithRecorder(rec), WithTimeout(2*time.Second))
	c.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	receipt, err := c.Submit(context.Background(), Lead{
		Name:       "Daniel",
		Email:      " daniel@example.com ",
		Instrument: "Piano",
		Region:     "UK",
		Currency:   "GBP",
		Message:    "Weekends please",
	})
	require.NoError(t, err)
	require.True(t, receipt.Forwarded)
	require.Equal(t, "crm-42", receipt.Reference)
	require.Equal(t, "queued", receipt.Status)

	require.Equal(t, "/hooks/leads", gotPath)
	require.NotEmpty(t, gotKey)
	require.Equal(t, "daniel@example.com", gotBody.Email)
	require.Equal(t, "UK", gotBody.Region)
	require.Equal(t, "website-trial-form", gotBody.Source)
	require.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), gotBody.SubmittedAt)

	require.Len(t, rec.calls, 1)
	require.Equal(t, recordedCall{"leads", "/leads", http.StatusCreated}, rec.calls[0])
}

func TestSubmitNoContentUsesIdempotencyKey(t *testing.T) {
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get(idempotencyHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	receipt, err := NewClient(srv.URL).Submit(context.Background(), Lead{Name: "Mariam"})
	require.NoError(t, err)
	require.Equal(t, key, receipt.Reference)
	require.Equal(t, "received", receipt.Status)
}

func TestSubmitEndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "crm down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rec := &fakeRecorder{}
	_, err := NewClient(srv.URL, WithRecorder(rec)).Submit(context.Background(), Lead{Name: "Ava"})
	require.ErrorIs(t, err, ErrEndpointStatus)
	require.ErrorContains(t, err, "crm down")
	require.Equal(t, http.StatusServiceUnavailable, rec.calls[0].status)
}

func TestSubmitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL).Submit(ctx, Lead{Name: "Ava"})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

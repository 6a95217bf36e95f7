package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestSubmit_Success(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/checkout", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://pay.example.com/session/abc"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{}, nil)

	result, err := client.Submit(context.Background(), &Request{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+15550100",
		Date:  time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:  "10:00 AM",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/abc", result.URL)
	assert.Empty(t, result.Error)

	// В теле только контакт и расписание, без serviceId и цены
	assert.Equal(t, "Alice", received["name"])
	assert.Equal(t, "10:00 AM", received["time"])
	assert.NotContains(t, received, "serviceId")
	assert.NotContains(t, received, "price")
}

func TestSubmit_RejectionBodyIsReturnedNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Отказ приходит JSON-телом, статус-код вторичен
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"Your card was declined."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{}, nil)

	result, err := client.Submit(context.Background(), &Request{Name: "Alice"})

	require.NoError(t, err)
	assert.Empty(t, result.URL)
	assert.Equal(t, "Your card was declined.", result.Error)
}

func TestSubmit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{}, nil)

	_, err := client.Submit(context.Background(), &Request{Name: "Alice"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSubmit_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{}, nil)

	_, err := client.Submit(context.Background(), &Request{Name: "Alice"})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

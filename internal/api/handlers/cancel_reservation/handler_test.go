package cancel_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cancelUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/cancel_reservation"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	got  *cancelUC.Request
	resp *cancelUC.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *cancelUC.Request) (*cancelUC.Response, error) {
	s.got = req
	return s.resp, s.err
}

func doCancel(t *testing.T, uc CancelReservationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/cancel",
		bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PositiveOutcome(t *testing.T) {
	uc := &stubUseCase{resp: &cancelUC.Response{
		Message: "Reservation cancelled. Deposit refunded.",
		Outcome: cancelUC.OutcomePositive,
	}}

	rec := doCancel(t, uc, `{"token":"tok-abc123","confirmed":true}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Reservation cancelled. Deposit refunded.", body.Message)
	assert.Equal(t, "positive", body.Outcome)

	require.NotNil(t, uc.got)
	assert.Equal(t, "tok-abc123", uc.got.Token)
	assert.True(t, uc.got.Confirmed)
}

func TestHandle_NegativeOutcome(t *testing.T) {
	uc := &stubUseCase{resp: &cancelUC.Response{
		Message: "Reservation cancelled. Deposit forfeited (less than 24h notice).",
		Outcome: cancelUC.OutcomeNegative,
	}}

	rec := doCancel(t, uc, `{"token":"tok-abc123","confirmed":true}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "negative", body.Outcome)
}

func TestHandle_NotConfirmed(t *testing.T) {
	rec := doCancel(t, &stubUseCase{err: cancelUC.ErrNotConfirmed},
		`{"token":"tok-abc123","confirmed":false}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_EmptyToken(t *testing.T) {
	rec := doCancel(t, &stubUseCase{err: cancelUC.ErrEmptyToken},
		`{"token":"","confirmed":true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &stubUseCase{}

	rec := doCancel(t, uc, `{"token":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

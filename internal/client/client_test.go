//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-api/internal/client"
	reqdto "booking-api/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestCreateBooking(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Juan Reyes", body["name"])
		assert.Equal(t, "2030-05-01T17:00:00Z", body["startAt"])

		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "id": "b-1"})
	})

	id, err := c.CreateBooking(context.Background(), reqdto.BookingRequest{
		Name:    "Juan Reyes",
		Service: "Regular Cut ($25)",
		StartAt: "2030-05-01T17:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "b-1", id)
}

func TestPublicLookupEncodesQuery(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/public", r.URL.Path)
		assert.Equal(t, "De La Cruz", r.URL.Query().Get("lastName"))
		assert.Equal(t, "1234", r.URL.Query().Get("last4"))
		writeJSON(w, http.StatusOK, map[string]any{
			"ok": true,
			"bookings": []map[string]any{
				{"id": "b-1", "name": "Ana De La Cruz", "service": "House Call ($50)", "startAt": "2030-05-01T17:00:00Z", "notes": ""},
			},
		})
	})

	got, err := c.PublicLookup(context.Background(), "De La Cruz", "1234")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)
	assert.Equal(t, "House Call ($50)", got[0].Service)
}

func TestAdminCallsCarrySession(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "token": "tok"})
		case "/api/bookings":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "bookings": []any{}})
		case "/api/bookings/b-1":
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": "b-1"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	session, err := c.Login(ctx, "letmein")
	require.NoError(t, err)
	assert.True(t, session.Valid())

	list, err := c.ListBookings(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = c.UpdateBooking(ctx, session, "b-1", reqdto.BookingRequest{Name: "x", Service: "y", StartAt: "2030-05-01T17:00:00Z"})
	require.NoError(t, err)
}

func TestAdminCallsWithoutSession(t *testing.T) {
	c := client.New("http://127.0.0.1:1")

	_, err := c.ListBookings(context.Background(), client.Session{})
	assert.ErrorIs(t, err, client.ErrNoSession)

	err = c.UpdateBooking(context.Background(), client.Session{}, "b-1", reqdto.BookingRequest{})
	assert.ErrorIs(t, err, client.ErrNoSession)
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": map[string]any{"code": "validation_error", "message": "Last4 must be 4 digits"},
		})
	})

	_, err := c.PublicLookup(context.Background(), "reyes", "12a4")

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "validation_error", apiErr.Code)
	assert.Equal(t, "Last4 must be 4 digits", apiErr.Message)
}

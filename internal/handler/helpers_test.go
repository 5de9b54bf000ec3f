package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registrations/internal/cqrs"
	"github.com/pkordes/trip-registrations/internal/domain"
	"github.com/pkordes/trip-registrations/internal/handler"
	"github.com/pkordes/trip-registrations/internal/service"
)

// unexpectedHandler fails the test if the route dispatches to it.
func unexpectedHandler[Req, Res any](t *testing.T, name string) cqrs.Handler[Req, Res] {
	return cqrs.HandlerFunc[Req, Res](func(context.Context, Req) (Res, error) {
		t.Errorf("unexpected dispatch of %s", name)
		var zero Res
		return zero, nil
	})
}

// testBus returns a Bus whose handlers all fail the test when called.
// Tests replace the handlers they expect to be dispatched.
func testBus(t *testing.T) *cqrs.Bus {
	t.Helper()
	return &cqrs.Bus{
		CreateTrip:           unexpectedHandler[cqrs.CreateTripCommand, int64](t, "CreateTrip"),
		EditTrip:             unexpectedHandler[cqrs.EditTripCommand, cqrs.None](t, "EditTrip"),
		DeleteTrip:           unexpectedHandler[cqrs.DeleteTripCommand, bool](t, "DeleteTrip"),
		RegisterForTrip:      unexpectedHandler[cqrs.RegisterForTripCommand, cqrs.None](t, "RegisterForTrip"),
		ListAllTrips:         unexpectedHandler[cqrs.ListAllTripsQuery, []service.TripSummary](t, "ListAllTrips"),
		SearchTripsByCountry: unexpectedHandler[cqrs.SearchTripsByCountryQuery, []service.TripSummary](t, "SearchTripsByCountry"),
		GetSingleTrip:        unexpectedHandler[cqrs.GetSingleTripQuery, service.TripDetails](t, "GetSingleTrip"),
		ListCountries:        unexpectedHandler[cqrs.ListCountriesQuery, []domain.Country](t, "ListCountries"),
		Export:               unexpectedHandler[cqrs.ExportQuery, []domain.ExportRow](t, "Export"),
	}
}

// newHTTPHandler wires a Server around bus into its chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(bus *cqrs.Bus) http.Handler {
	return handler.NewServer(bus, slog.New(slog.NewJSONHandler(io.Discard, nil))).Routes()
}

// newLoggedHTTPHandler is newHTTPHandler with logs captured in buf.
func newLoggedHTTPHandler(bus *cqrs.Bus, buf *bytes.Buffer) http.Handler {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return handler.NewServer(bus, logger).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorMessage decodes the {"message": ...} body of an error response.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

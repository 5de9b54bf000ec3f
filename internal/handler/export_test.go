package handler_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registrations/internal/cqrs"
	"github.com/pkordes/trip-registrations/internal/domain"
)

// exportBus returns a test bus whose Export handler yields rows.
func exportBus(t *testing.T, rows []domain.ExportRow) *cqrs.Bus {
	t.Helper()
	bus := testBus(t)
	bus.Export = cqrs.HandlerFunc[cqrs.ExportQuery, []domain.ExportRow](func(context.Context, cqrs.ExportQuery) ([]domain.ExportRow, error) {
		return rows, nil
	})
	return bus
}

// exportRowsFixture returns one registered row and one trip without
// registrations.
func exportRowsFixture() []domain.ExportRow {
	start := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	registeredAt := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	return []domain.ExportRow{
		{
			TripID: 1, TripName: "Alpine Trek", CountryCode: "POL", CountryName: "Poland",
			StartDate: start, NumberOfSeats: 50, Email: "a@b.com", RegisteredAt: &registeredAt,
		},
		{
			TripID: 2, TripName: "Quiet, Please", CountryCode: "DEU", CountryName: "Germany",
			StartDate: start, NumberOfSeats: 10,
		},
	}
}

func TestGetExport_JSONByDefault(t *testing.T) {
	rec := serve(newHTTPHandler(exportBus(t, exportRowsFixture())), http.MethodGet, "/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"tripId":1,"tripName":"Alpine Trek","countryCode":"POL","countryName":"Poland",
		 "startDate":"2030-06-01T09:00:00Z","numberOfSeats":50,
		 "email":"a@b.com","registeredAt":"2030-01-02T03:04:05Z"},
		{"tripId":2,"tripName":"Quiet, Please","countryCode":"DEU","countryName":"Germany",
		 "startDate":"2030-06-01T09:00:00Z","numberOfSeats":10}
	]`, rec.Body.String())
}

func TestGetExport_CSV(t *testing.T) {
	rec := serve(newHTTPHandler(exportBus(t, exportRowsFixture())), http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one line per row")
	assert.Equal(t, []string{
		"trip_id", "trip_name", "country_code", "country_name",
		"start_date", "number_of_seats", "email", "registered_at",
	}, records[0])
	assert.Equal(t, []string{"1", "Alpine Trek", "POL", "Poland", "2030-06-01T09:00:00Z", "50", "a@b.com", "2030-01-02T03:04:05Z"}, records[1])
	assert.Equal(t, []string{"2", "Quiet, Please", "DEU", "Germany", "2030-06-01T09:00:00Z", "10", "", ""}, records[2])
}

func TestGetExport_CSV_Empty(t *testing.T) {
	rec := serve(newHTTPHandler(exportBus(t, []domain.ExportRow{})), http.MethodGet, "/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestGetExport_400_UnknownFormat(t *testing.T) {
	rec := serve(newHTTPHandler(testBus(t)), http.MethodGet, "/export?format=xml", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "xml")
}

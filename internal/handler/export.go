package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/pkordes/trip-registrations/internal/cqrs"
	"github.com/pkordes/trip-registrations/internal/domain"
)

// Export formats accepted by ?format=.
const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "country_code", "country_name",
	"start_date", "number_of_seats", "email", "registered_at",
}

// exportRow is the JSON shape of one export row. Registration fields are
// omitted for trips without registrations.
type exportRow struct {
	TripID        int64      `json:"tripId"`
	TripName      string     `json:"tripName"`
	CountryCode   string     `json:"countryCode"`
	CountryName   string     `json:"countryName"`
	StartDate     time.Time  `json:"startDate"`
	NumberOfSeats int        `json:"numberOfSeats"`
	Email         string     `json:"email,omitempty"`
	RegisteredAt  *time.Time `json:"registeredAt,omitempty"`
}

// GetExport handles GET /export.
// It returns one row per registration across all trips.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := queryParam(r, "format", false, &format); err != nil {
		s.writeError(w, r, err)
		return
	}
	if format != nil && *format != formatJSON && *format != formatCSV {
		s.writeError(w, r, badRequest("Unsupported export format '%s'. Use json or csv.", *format))
		return
	}

	rows, err := s.bus.Export.Handle(r.Context(), cqrs.ExportQuery{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if format != nil && *format == formatCSV {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, toExportRows(rows))
}

func toExportRows(rows []domain.ExportRow) []exportRow {
	out := make([]exportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, exportRow{
			TripID:        r.TripID,
			TripName:      r.TripName,
			CountryCode:   r.CountryCode,
			CountryName:   r.CountryName,
			StartDate:     r.StartDate,
			NumberOfSeats: r.NumberOfSeats,
			Email:         r.Email,
			RegisteredAt:  r.RegisteredAt,
		})
	}
	return out
}

// writeCSV encodes rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(toCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="export.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// toCSVRecord encodes a domain.ExportRow as a flat string slice.
// A nil registration time is encoded as an empty string.
func toCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.FormatInt(r.TripID, 10),
		r.TripName,
		r.CountryCode,
		r.CountryName,
		r.StartDate.UTC().Format(time.RFC3339),
		strconv.Itoa(r.NumberOfSeats),
		r.Email,
		formatOptionalTime(r.RegisteredAt),
	}
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

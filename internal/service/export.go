package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-registrations/internal/domain"
	"github.com/pkordes/trip-registrations/internal/repo"
)

// ExportService assembles a full flat export of all trips and registrations.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per registration across all trips.
// Trips with no registrations contribute one row with empty registration fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	rows, err := s.trips.ExportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	if rows == nil {
		rows = []domain.ExportRow{}
	}
	return rows, nil
}

package overtime

import (
	"context"
)

// OvertimeService defines business logic for overtime reports
type OvertimeService interface {
	// Calculate computes a report from records supplied as JSON
	Calculate(ctx context.Context, req CalculateRequest) (ReportResponse, error)

	// Upload computes a report from an uploaded csv or xlsx timesheet
	Upload(ctx context.Context, req UploadRequest) (ReportResponse, error)
}

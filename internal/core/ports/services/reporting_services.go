package services

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/dto"
)

// ReportingSvcFacade builds the dashboard views: one month's bill and
// cash-flow picture, and a full-year breakdown with per-property returns.
type ReportingSvcFacade interface {
	MonthlyReport(ctx context.Context, month, year int) (*dto.MonthlyReportResponse, error)
	YearlyReport(ctx context.Context, year int) (*dto.YearlyReportResponse, error)
}

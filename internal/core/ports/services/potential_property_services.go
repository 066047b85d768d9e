package services

import (
	"context"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
)

// PotentialPropertySvcFacade exposes the acquisition pipeline and its ROI
// analysis.
type PotentialPropertySvcFacade interface {
	CreatePotentialProperty(ctx context.Context, req dto.CreatePotentialPropertyRequest) (*domain.PotentialProperty, error)
	GetPotentialPropertyByID(ctx context.Context, propertyID int64) (*domain.PotentialProperty, error)
	ListPotentialProperties(ctx context.Context) ([]domain.PotentialProperty, error)
	UpdatePotentialProperty(ctx context.Context, propertyID int64, req dto.UpdatePotentialPropertyRequest) (*domain.PotentialProperty, error)
	DeletePotentialProperty(ctx context.Context, propertyID int64) error
	EvaluateROI(ctx context.Context, propertyID int64) (*domain.PotentialProperty, *cashflow.ROIResult, error)
	AnalyzeAll(ctx context.Context) ([]dto.PotentialPropertyAnalysis, error)
}

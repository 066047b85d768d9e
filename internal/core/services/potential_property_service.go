package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rentledger/rentledger_backend/internal/core/domain"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/utils/cashflow"
	"github.com/shopspring/decimal"
)

// Financing defaults applied when a prospect is created without them.
var (
	defaultDownPaymentPercent = decimal.NewFromInt(20)
	defaultInterestRate       = decimal.NewFromInt(7)
)

const defaultLoanTermYears = 30

type potentialPropertyService struct {
	BaseService
	potentialRepo portsrepo.PotentialPropertyRepository
}

// NewPotentialPropertyService creates the acquisition pipeline service.
func NewPotentialPropertyService(potentialRepo portsrepo.PotentialPropertyRepository) portssvc.PotentialPropertySvcFacade {
	return &potentialPropertyService{potentialRepo: potentialRepo}
}

var _ portssvc.PotentialPropertySvcFacade = (*potentialPropertyService)(nil)

func (s *potentialPropertyService) CreatePotentialProperty(ctx context.Context, req dto.CreatePotentialPropertyRequest) (*domain.PotentialProperty, error) {
	downPayment := defaultDownPaymentPercent
	if req.DownPaymentPercent != nil {
		downPayment = *req.DownPaymentPercent
	}
	interestRate := defaultInterestRate
	if req.InterestRate != nil {
		interestRate = *req.InterestRate
	}
	loanTerm := defaultLoanTermYears
	if req.LoanTermYears != nil {
		loanTerm = *req.LoanTermYears
	}
	managementPercent := defaultManagementPercent
	if req.PropertyManagementPercent != nil {
		managementPercent = *req.PropertyManagementPercent
	}
	status := domain.PotentialStatus(req.Status)
	if status == "" {
		status = domain.StatusAnalyzing
	}

	property := domain.PotentialProperty{
		Name:                      req.Name,
		Address:                   req.Address,
		PurchasePrice:             decimalOrZero(req.PurchasePrice),
		IsCashPurchase:            req.IsCashPurchase,
		DownPaymentPercent:        downPayment,
		InterestRate:              interestRate,
		LoanTermYears:             loanTerm,
		EstimatedMonthlyRent:      decimalOrZero(req.EstimatedMonthlyRent),
		PropertyTaxAnnual:         decimalOrZero(req.PropertyTaxAnnual),
		InsuranceAnnual:           decimalOrZero(req.InsuranceAnnual),
		HOAMonthly:                decimalOrZero(req.HOAMonthly),
		PropertyManagementPercent: managementPercent,
		MaintenanceMonthly:        decimalOrZero(req.MaintenanceMonthly),
		OtherExpensesMonthly:      decimalOrZero(req.OtherExpensesMonthly),
		Notes:                     req.Notes,
		Status:                    status,
	}

	if err := s.potentialRepo.SavePotentialProperty(ctx, &property); err != nil {
		s.LogError(ctx, err, "failed to create potential property", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create potential property: %w", err)
	}

	s.LogInfo(ctx, "potential property created", slog.Int64("property_id", property.PropertyID))
	return &property, nil
}

func (s *potentialPropertyService) GetPotentialPropertyByID(ctx context.Context, propertyID int64) (*domain.PotentialProperty, error) {
	return s.potentialRepo.FindPotentialPropertyByID(ctx, propertyID)
}

func (s *potentialPropertyService) ListPotentialProperties(ctx context.Context) ([]domain.PotentialProperty, error) {
	properties, err := s.potentialRepo.ListPotentialProperties(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list potential properties")
		return nil, err
	}
	if properties == nil {
		properties = []domain.PotentialProperty{}
	}
	return properties, nil
}

func (s *potentialPropertyService) UpdatePotentialProperty(ctx context.Context, propertyID int64, req dto.UpdatePotentialPropertyRequest) (*domain.PotentialProperty, error) {
	property, err := s.potentialRepo.FindPotentialPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	property.Name = req.Name
	property.Address = req.Address
	property.PurchasePrice = decimalOrZero(req.PurchasePrice)
	property.IsCashPurchase = req.IsCashPurchase
	if req.DownPaymentPercent != nil {
		property.DownPaymentPercent = *req.DownPaymentPercent
	}
	if req.InterestRate != nil {
		property.InterestRate = *req.InterestRate
	}
	if req.LoanTermYears != nil {
		property.LoanTermYears = *req.LoanTermYears
	}
	property.EstimatedMonthlyRent = decimalOrZero(req.EstimatedMonthlyRent)
	property.PropertyTaxAnnual = decimalOrZero(req.PropertyTaxAnnual)
	property.InsuranceAnnual = decimalOrZero(req.InsuranceAnnual)
	property.HOAMonthly = decimalOrZero(req.HOAMonthly)
	if req.PropertyManagementPercent != nil {
		property.PropertyManagementPercent = *req.PropertyManagementPercent
	}
	property.MaintenanceMonthly = decimalOrZero(req.MaintenanceMonthly)
	property.OtherExpensesMonthly = decimalOrZero(req.OtherExpensesMonthly)
	property.Notes = req.Notes
	if req.Status != "" {
		property.Status = domain.PotentialStatus(req.Status)
	}

	if err := s.potentialRepo.UpdatePotentialProperty(ctx, property); err != nil {
		s.LogError(ctx, err, "failed to update potential property", slog.Int64("property_id", propertyID))
		return nil, err
	}

	return property, nil
}

func (s *potentialPropertyService) DeletePotentialProperty(ctx context.Context, propertyID int64) error {
	if err := s.potentialRepo.DeletePotentialProperty(ctx, propertyID); err != nil {
		return err
	}
	s.LogInfo(ctx, "potential property deleted", slog.Int64("property_id", propertyID))
	return nil
}

// EvaluateROI runs the full return analysis for one prospect.
func (s *potentialPropertyService) EvaluateROI(ctx context.Context, propertyID int64) (*domain.PotentialProperty, *cashflow.ROIResult, error) {
	property, err := s.potentialRepo.FindPotentialPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, nil, err
	}

	result := cashflow.EvaluateROI(*property)
	return property, &result, nil
}

// AnalyzeAll evaluates every prospect for side-by-side comparison.
func (s *potentialPropertyService) AnalyzeAll(ctx context.Context) ([]dto.PotentialPropertyAnalysis, error) {
	properties, err := s.potentialRepo.ListPotentialProperties(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list potential properties for analysis")
		return nil, err
	}

	analyses := make([]dto.PotentialPropertyAnalysis, len(properties))
	for i := range properties {
		analyses[i] = dto.PotentialPropertyAnalysis{
			Property: dto.ToPotentialPropertyResponse(&properties[i]),
			ROI:      cashflow.EvaluateROI(properties[i]),
		}
	}
	return analyses, nil
}

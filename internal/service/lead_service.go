// Package service exposes the lead façade consumed by the HTTP layer.
package service

import (
	"context"
	"sync"

	"github.com/kervincort225/vyntra/internal/entity"
	"github.com/kervincort225/vyntra/internal/infra/repository"
	"github.com/kervincort225/vyntra/internal/usecase"
)

// LeadMetrics aggregates the dashboard KPI reads.
type LeadMetrics struct {
	CountByStatus  []entity.StatusCount `json:"count_by_status"`
	TotalValue     float64              `json:"total_value"`
	ConversionRate float64              `json:"conversion_rate"`
}

// LeadService is the single entry point for lead operations. It resolves
// the repository once through the factory and wires the use cases against
// it. Errors from validation or the store pass through unwrapped.
type LeadService struct {
	repo   entity.LeadRepository
	remote bool

	createLead  *usecase.CreateLeadUseCase
	getAllLeads *usecase.GetAllLeadsUseCase
}

func NewLeadService(factory *repository.Factory) *LeadService {
	repo := factory.Get()
	return &LeadService{
		repo:        repo,
		remote:      factory.UsingRemote(),
		createLead:  usecase.NewCreateLeadUseCase(repo),
		getAllLeads: usecase.NewGetAllLeadsUseCase(repo),
	}
}

func (s *LeadService) CreateLead(ctx context.Context, data entity.CreateLeadDTO) (*entity.Lead, error) {
	return s.createLead.Execute(ctx, data)
}

func (s *LeadService) GetAllLeads(ctx context.Context) ([]entity.Lead, error) {
	return s.getAllLeads.Execute(ctx)
}

func (s *LeadService) GetLeadByID(ctx context.Context, id string) (*entity.Lead, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LeadService) UpdateLead(ctx context.Context, id string, data entity.UpdateLeadDTO) (*entity.Lead, error) {
	return s.repo.Update(ctx, id, data)
}

func (s *LeadService) DeleteLead(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *LeadService) GetLeadsByStatus(ctx context.Context, status entity.LeadStatus) ([]entity.Lead, error) {
	return s.repo.FindByStatus(ctx, status)
}

// GetLeadMetrics runs the three aggregate reads concurrently and returns
// the first error, if any.
func (s *LeadService) GetLeadMetrics(ctx context.Context) (*LeadMetrics, error) {
	var (
		wg      sync.WaitGroup
		metrics LeadMetrics
		errs    [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		metrics.CountByStatus, errs[0] = s.repo.CountByStatus(ctx)
	}()
	go func() {
		defer wg.Done()
		metrics.TotalValue, errs[1] = s.repo.TotalValue(ctx)
	}()
	go func() {
		defer wg.Done()
		metrics.ConversionRate, errs[2] = s.repo.ConversionRate(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &metrics, nil
}

// UsingRemoteStore reports whether leads are persisted in Supabase rather
// than the in-memory fallback.
func (s *LeadService) UsingRemoteStore() bool {
	return s.remote
}

package usecase

import (
	"context"

	"github.com/kervincort225/vyntra/internal/entity"
)

type GetAllLeadsUseCase struct {
	Repo entity.LeadRepository
}

func NewGetAllLeadsUseCase(repo entity.LeadRepository) *GetAllLeadsUseCase {
	return &GetAllLeadsUseCase{Repo: repo}
}

// Execute is a plain passthrough today. It exists as the seam where
// per-user filtering or a different sort order would go.
func (uc *GetAllLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	return uc.Repo.FindAll(ctx)
}

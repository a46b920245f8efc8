package usecase

import (
	"context"
	"strings"

	"github.com/kervincort225/vyntra/internal/entity"
)

// Threshold above which a lead's estimated value alone makes it high priority.
const highValueThreshold = 30000

type CreateLeadUseCase struct {
	Repo entity.LeadRepository
}

func NewCreateLeadUseCase(repo entity.LeadRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

// Execute validates the input, fills in a derived priority when the caller
// supplied none, and persists through the repository. Validation failures
// come back as a single DomainError listing every bad field; repository
// errors are returned untouched.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input entity.CreateLeadDTO) (*entity.Lead, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		parts := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			parts = append(parts, e.Error())
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed: " + strings.Join(parts, "; "),
		}
	}

	if input.Priority == "" {
		input.Priority = calculatePriority(input)
	}

	return uc.Repo.Create(ctx, input)
}

// calculatePriority derives a default priority for a new lead. Low is never
// derived; it only appears when a caller sets it explicitly.
func calculatePriority(input entity.CreateLeadDTO) entity.LeadPriority {
	if input.Value != nil && *input.Value > highValueThreshold {
		return entity.PriorityHigh
	}

	if input.Source == entity.SourceReferral {
		return entity.PriorityHigh
	}

	if input.Source == entity.SourceChatbot && strings.Contains(strings.ToLower(input.Message), "urgente") {
		return entity.PriorityHigh
	}

	return entity.PriorityMedium
}

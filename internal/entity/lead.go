package entity

import (
	"context"
	"time"
)

type LeadSource string

const (
	SourceChatbot  LeadSource = "chatbot"
	SourceForm     LeadSource = "form"
	SourceReferral LeadSource = "referral"
	SourceSocial   LeadSource = "social"
	SourceDirect   LeadSource = "direct"
)

type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusProposal  LeadStatus = "proposal"
	StatusConverted LeadStatus = "converted"
	StatusLost      LeadStatus = "lost"
)

// AllLeadStatuses returns every status in declaration order.
// CountByStatus reports one entry per value in this order.
func AllLeadStatuses() []LeadStatus {
	return []LeadStatus{
		StatusNew,
		StatusContacted,
		StatusQualified,
		StatusProposal,
		StatusConverted,
		StatusLost,
	}
}

type LeadPriority string

const (
	PriorityHigh   LeadPriority = "high"
	PriorityMedium LeadPriority = "medium"
	PriorityLow    LeadPriority = "low"
)

type Lead struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Company     string       `json:"company,omitempty"`
	Source      LeadSource   `json:"source"`
	Status      LeadStatus   `json:"status"`
	Message     string       `json:"message"`
	Value       *float64     `json:"value,omitempty"`
	Priority    LeadPriority `json:"priority"`
	AssignedTo  string       `json:"assigned_to,omitempty"`
	LastContact *time.Time   `json:"last_contact,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateLeadDTO carries caller input for a new lead. Priority left empty
// means "derive it" (see usecase.CreateLeadUseCase).
type CreateLeadDTO struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone,omitempty"`
	Company  string       `json:"company,omitempty"`
	Source   LeadSource   `json:"source"`
	Message  string       `json:"message"`
	Value    *float64     `json:"value,omitempty"`
	Priority LeadPriority `json:"priority,omitempty"`
}

// UpdateLeadDTO is a partial patch. Nil fields are left untouched.
type UpdateLeadDTO struct {
	Status      *LeadStatus   `json:"status,omitempty"`
	Priority    *LeadPriority `json:"priority,omitempty"`
	AssignedTo  *string       `json:"assigned_to,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
	Value       *float64      `json:"value,omitempty"`
	LastContact *time.Time    `json:"last_contact,omitempty"`
}

type StatusCount struct {
	Status LeadStatus `json:"status"`
	Count  int        `json:"count"`
}

// LeadRepository is the persistence port. Two adapters implement it: the
// in-memory store and the Supabase-backed store.
//
// The failure policy is asymmetric on purpose: Create returns the backend
// error so a failed write is never silent, while read/query methods degrade
// on backend failure (empty slice, nil lead, false, zero) so the dashboard
// keeps rendering. FindByID and Update return (nil, nil) when the id is
// unknown.
type LeadRepository interface {
	Create(ctx context.Context, data CreateLeadDTO) (*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAll(ctx context.Context) ([]Lead, error)
	Update(ctx context.Context, id string, data UpdateLeadDTO) (*Lead, error)
	Delete(ctx context.Context, id string) (bool, error)

	FindByStatus(ctx context.Context, status LeadStatus) ([]Lead, error)
	FindBySource(ctx context.Context, source LeadSource) ([]Lead, error)
	FindByAssignedTo(ctx context.Context, userID string) ([]Lead, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Lead, error)

	CountByStatus(ctx context.Context) ([]StatusCount, error)
	TotalValue(ctx context.Context) (float64, error)
	ConversionRate(ctx context.Context) (float64, error)
}

package supabase

import (
	"time"

	"github.com/kervincort225/vyntra/internal/entity"
)

// leadRow mirrors one row of the remote leads table. Column names are
// snake_case on the wire; nullable columns map to pointers.
type leadRow struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Company     *string    `json:"company,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	Value       *float64   `json:"value,omitempty"`
	Priority    string     `json:"priority"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	LastContact *time.Time `json:"last_contact,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	UpdatedAt   time.Time  `json:"updated_at,omitzero"`
}

func newLeadRow(data entity.CreateLeadDTO) leadRow {
	now := time.Now().UTC()
	return leadRow{
		Name:      data.Name,
		Email:     data.Email,
		Phone:     nullString(data.Phone),
		Company:   nullString(data.Company),
		Source:    string(data.Source),
		Status:    string(entity.StatusNew),
		Message:   data.Message,
		Value:     data.Value,
		Priority:  string(data.Priority),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r leadRow) toEntity() entity.Lead {
	return entity.Lead{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       derefString(r.Phone),
		Company:     derefString(r.Company),
		Source:      entity.LeadSource(r.Source),
		Status:      entity.LeadStatus(r.Status),
		Message:     r.Message,
		Value:       r.Value,
		Priority:    entity.LeadPriority(r.Priority),
		AssignedTo:  derefString(r.AssignedTo),
		LastContact: r.LastContact,
		Notes:       derefString(r.Notes),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// patchPayload turns a partial update into the row fragment sent with PATCH.
// Only set fields appear, plus the refreshed updated_at.
func patchPayload(data entity.UpdateLeadDTO) map[string]any {
	payload := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if data.Status != nil {
		payload["status"] = *data.Status
	}
	if data.Priority != nil {
		payload["priority"] = *data.Priority
	}
	if data.AssignedTo != nil {
		payload["assigned_to"] = *data.AssignedTo
	}
	if data.Notes != nil {
		payload["notes"] = *data.Notes
	}
	if data.Value != nil {
		payload["value"] = *data.Value
	}
	if data.LastContact != nil {
		payload["last_contact"] = *data.LastContact
	}
	return payload
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

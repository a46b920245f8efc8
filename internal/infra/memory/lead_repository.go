package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kervincort225/vyntra/internal/entity"
)

// LeadRepository is the in-memory adapter, used in development and as the
// fallback when the remote backend is not configured. The store is shared by
// every request in the process, so all access goes through the mutex.
type LeadRepository struct {
	mu    sync.RWMutex
	leads []entity.Lead
}

// NewLeadRepository starts with the given leads, newest last. Tests pass
// nothing to get an empty store.
func NewLeadRepository(seed ...entity.Lead) *LeadRepository {
	leads := make([]entity.Lead, len(seed))
	copy(leads, seed)
	return &LeadRepository{leads: leads}
}

func (r *LeadRepository) Create(_ context.Context, data entity.CreateLeadDTO) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	priority := data.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	now := time.Now()
	lead := entity.Lead{
		ID:        uuid.New().String(),
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Company:   data.Company,
		Source:    data.Source,
		Status:    entity.StatusNew,
		Message:   data.Message,
		Value:     data.Value,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.leads = append(r.leads, lead)

	out := lead
	return &out, nil
}

func (r *LeadRepository) FindByID(_ context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, lead := range r.leads {
		if lead.ID == id {
			out := lead
			return &out, nil
		}
	}
	return nil, nil
}

func (r *LeadRepository) FindAll(_ context.Context) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCopy(nil), nil
}

func (r *LeadRepository) Update(_ context.Context, id string, data entity.UpdateLeadDTO) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leads {
		if r.leads[i].ID != id {
			continue
		}

		lead := &r.leads[i]
		if data.Status != nil {
			lead.Status = *data.Status
		}
		if data.Priority != nil {
			lead.Priority = *data.Priority
		}
		if data.AssignedTo != nil {
			lead.AssignedTo = *data.AssignedTo
		}
		if data.Notes != nil {
			lead.Notes = *data.Notes
		}
		if data.Value != nil {
			lead.Value = data.Value
		}
		if data.LastContact != nil {
			lead.LastContact = data.LastContact
		}
		lead.UpdatedAt = time.Now()

		out := *lead
		return &out, nil
	}

	return nil, nil
}

func (r *LeadRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leads {
		if r.leads[i].ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *LeadRepository) FindByStatus(_ context.Context, status entity.LeadStatus) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCopy(func(l entity.Lead) bool { return l.Status == status }), nil
}

func (r *LeadRepository) FindBySource(_ context.Context, source entity.LeadSource) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCopy(func(l entity.Lead) bool { return l.Source == source }), nil
}

func (r *LeadRepository) FindByAssignedTo(_ context.Context, userID string) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCopy(func(l entity.Lead) bool { return l.AssignedTo == userID }), nil
}

func (r *LeadRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedCopy(func(l entity.Lead) bool {
		return !l.CreatedAt.Before(start) && !l.CreatedAt.After(end)
	}), nil
}

func (r *LeadRepository) CountByStatus(_ context.Context) ([]entity.StatusCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[entity.LeadStatus]int)
	for _, lead := range r.leads {
		counts[lead.Status]++
	}

	statuses := entity.AllLeadStatuses()
	out := make([]entity.StatusCount, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, entity.StatusCount{Status: status, Count: counts[status]})
	}
	return out, nil
}

func (r *LeadRepository) TotalValue(_ context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, lead := range r.leads {
		if lead.Value != nil {
			total += *lead.Value
		}
	}
	return total, nil
}

func (r *LeadRepository) ConversionRate(_ context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.leads)
	if total == 0 {
		return 0, nil
	}

	converted := 0
	for _, lead := range r.leads {
		if lead.Status == entity.StatusConverted {
			converted++
		}
	}
	return float64(converted) / float64(total) * 100, nil
}

// sortedCopy returns matching leads newest-first. Caller must hold the lock.
// The copy is built in reverse insertion order so the stable sort keeps
// later-inserted leads first when timestamps collide.
func (r *LeadRepository) sortedCopy(match func(entity.Lead) bool) []entity.Lead {
	out := make([]entity.Lead, 0, len(r.leads))
	for i := len(r.leads) - 1; i >= 0; i-- {
		if match == nil || match(r.leads[i]) {
			out = append(out, r.leads[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

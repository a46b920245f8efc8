package supabase

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/kervincort225/vyntra/internal/entity"
)

const leadsTable = "leads"

// LeadRepository is the remote adapter, backed by the Supabase leads table.
//
// Create surfaces backend failures to the caller; a lost write on an
// explicit submission must not be silent. Every read degrades instead —
// empty list, nil lead, zero metric — so a flaky backend leaves the
// dashboard rendering stale-empty rather than erroring.
type LeadRepository struct {
	client *Client
}

func NewLeadRepository(client *Client) *LeadRepository {
	return &LeadRepository{client: client}
}

func (r *LeadRepository) Create(ctx context.Context, data entity.CreateLeadDTO) (*entity.Lead, error) {
	var rows []leadRow
	if err := r.client.do(ctx, http.MethodPost, leadsTable, nil, newLeadRow(data), &rows); err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("creating lead: backend returned no row")
	}

	lead := rows[0].toEntity()
	return &lead, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+id)
	query.Set("limit", "1")

	var rows []leadRow
	if err := r.client.do(ctx, http.MethodGet, leadsTable, query, nil, &rows); err != nil {
		log.Printf("supabase: findById %s failed: %v", id, err)
		return nil, nil
	}
	if len(rows) == 0 {
		return nil, nil
	}

	lead := rows[0].toEntity()
	return &lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	return r.queryLeads(ctx, url.Values{})
}

func (r *LeadRepository) Update(ctx context.Context, id string, data entity.UpdateLeadDTO) (*entity.Lead, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)

	var rows []leadRow
	if err := r.client.do(ctx, http.MethodPatch, leadsTable, query, patchPayload(data), &rows); err != nil {
		log.Printf("supabase: update %s failed: %v", id, err)
		return nil, nil
	}
	if len(rows) == 0 {
		return nil, nil
	}

	lead := rows[0].toEntity()
	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)

	var rows []leadRow
	if err := r.client.do(ctx, http.MethodDelete, leadsTable, query, nil, &rows); err != nil {
		log.Printf("supabase: delete %s failed: %v", id, err)
		return false, nil
	}
	return len(rows) > 0, nil
}

func (r *LeadRepository) FindByStatus(ctx context.Context, status entity.LeadStatus) ([]entity.Lead, error) {
	query := url.Values{}
	query.Set("status", "eq."+string(status))
	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) FindBySource(ctx context.Context, source entity.LeadSource) ([]entity.Lead, error) {
	query := url.Values{}
	query.Set("source", "eq."+string(source))
	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) FindByAssignedTo(ctx context.Context, userID string) ([]entity.Lead, error) {
	query := url.Values{}
	query.Set("assigned_to", "eq."+userID)
	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]entity.Lead, error) {
	query := url.Values{}
	query.Add("created_at", "gte."+start.UTC().Format(time.RFC3339))
	query.Add("created_at", "lte."+end.UTC().Format(time.RFC3339))
	return r.queryLeads(ctx, query)
}

func (r *LeadRepository) CountByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	counts := make(map[entity.LeadStatus]int)
	for _, row := range r.statusColumn(ctx) {
		counts[entity.LeadStatus(row.Status)]++
	}

	statuses := entity.AllLeadStatuses()
	out := make([]entity.StatusCount, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, entity.StatusCount{Status: status, Count: counts[status]})
	}
	return out, nil
}

func (r *LeadRepository) TotalValue(ctx context.Context) (float64, error) {
	query := url.Values{}
	query.Set("select", "value")

	var rows []struct {
		Value *float64 `json:"value"`
	}
	if err := r.client.do(ctx, http.MethodGet, leadsTable, query, nil, &rows); err != nil {
		log.Printf("supabase: totalValue failed: %v", err)
		return 0, nil
	}

	var total float64
	for _, row := range rows {
		if row.Value != nil {
			total += *row.Value
		}
	}
	return total, nil
}

func (r *LeadRepository) ConversionRate(ctx context.Context) (float64, error) {
	rows := r.statusColumn(ctx)
	total := len(rows)
	if total == 0 {
		return 0, nil
	}

	converted := 0
	for _, row := range rows {
		if entity.LeadStatus(row.Status) == entity.StatusConverted {
			converted++
		}
	}
	return float64(converted) / float64(total) * 100, nil
}

// queryLeads fetches full rows newest-first with the given filters,
// degrading to an empty list when the backend is unreachable.
func (r *LeadRepository) queryLeads(ctx context.Context, query url.Values) ([]entity.Lead, error) {
	query.Set("select", "*")
	query.Set("order", "created_at.desc")

	var rows []leadRow
	if err := r.client.do(ctx, http.MethodGet, leadsTable, query, nil, &rows); err != nil {
		log.Printf("supabase: lead query failed: %v", err)
		return []entity.Lead{}, nil
	}

	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, row.toEntity())
	}
	return leads, nil
}

type statusRow struct {
	Status string `json:"status"`
}

func (r *LeadRepository) statusColumn(ctx context.Context) []statusRow {
	query := url.Values{}
	query.Set("select", "status")

	var rows []statusRow
	if err := r.client.do(ctx, http.MethodGet, leadsTable, query, nil, &rows); err != nil {
		log.Printf("supabase: status query failed: %v", err)
		return nil
	}
	return rows
}

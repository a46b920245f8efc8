package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kervincort225/vyntra/internal/entity"
)

func floatPtr(v float64) *float64 { return &v }

func newFakeBackend(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *LeadRepository) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewLeadRepository(NewClient(server.URL, "service-key"))
}

func TestCreateSendsRowAndReturnsStoredLead(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/leads", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var row leadRow
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.Equal(t, "new", row.Status)
		assert.Equal(t, "Carlos Mendez", row.Name)

		row.ID = "lead-remote-1"
		row.CreatedAt = now
		row.UpdatedAt = now
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode([]leadRow{row})
	})

	lead, err := repo.Create(context.Background(), entity.CreateLeadDTO{
		Name:     "Carlos Mendez",
		Email:    "carlos@empresa.com",
		Source:   entity.SourceChatbot,
		Message:  "Necesito una cotización urgente",
		Value:    floatPtr(15000),
		Priority: entity.PriorityHigh,
	})

	assert.NoError(t, err)
	assert.Equal(t, "lead-remote-1", lead.ID)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, entity.PriorityHigh, lead.Priority)
	assert.True(t, lead.CreatedAt.Equal(now))
}

func TestCreatePropagatesBackendFailure(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	})

	lead, err := repo.Create(context.Background(), entity.CreateLeadDTO{
		Name:    "Carlos",
		Email:   "carlos@empresa.com",
		Source:  entity.SourceForm,
		Message: "Una consulta cualquiera larga",
	})

	assert.Error(t, err)
	assert.Nil(t, lead)
	assert.Contains(t, err.Error(), "creating lead")
}

func TestFindAllDegradesToEmptyOnFailure(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	leads, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, leads)
}

func TestFindAllOrdersByCreatedAtDesc(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "*", query.Get("select"))
		assert.Equal(t, "created_at.desc", query.Get("order"))

		json.NewEncoder(w).Encode([]leadRow{
			{ID: "b", Name: "Segundo", Email: "b@x.com", Source: "form", Status: "new", Priority: "medium"},
			{ID: "a", Name: "Primero", Email: "a@x.com", Source: "form", Status: "new", Priority: "medium"},
		})
	})

	leads, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, "b", leads[0].ID)
}

func TestFindByIDAbsent(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.missing", r.URL.Query().Get("id"))
		json.NewEncoder(w).Encode([]leadRow{})
	})

	lead, err := repo.FindByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, lead)
}

func TestUpdateSendsOnlyPatchedColumns(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.lead-1", r.URL.Query().Get("id"))

		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "contacted", payload["status"])
		assert.Contains(t, payload, "updated_at")
		assert.NotContains(t, payload, "priority")
		assert.NotContains(t, payload, "notes")

		json.NewEncoder(w).Encode([]leadRow{
			{ID: "lead-1", Name: "Carlos", Email: "c@x.com", Source: "form", Status: "contacted", Priority: "medium"},
		})
	})

	status := entity.StatusContacted
	lead, err := repo.Update(context.Background(), "lead-1", entity.UpdateLeadDTO{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, lead.Status)
}

func TestUpdateDegradesToAbsentOnFailure(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	status := entity.StatusContacted
	lead, err := repo.Update(context.Background(), "lead-1", entity.UpdateLeadDTO{Status: &status})

	assert.NoError(t, err)
	assert.Nil(t, lead)
}

func TestDeleteReportsWhetherRowWasRemoved(t *testing.T) {
	deleted := true
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if deleted {
			json.NewEncoder(w).Encode([]leadRow{{ID: "lead-1"}})
		} else {
			json.NewEncoder(w).Encode([]leadRow{})
		}
	})

	ok, err := repo.Delete(context.Background(), "lead-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	deleted = false
	ok, err = repo.Delete(context.Background(), "lead-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFindByDateRangeSendsBothBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		bounds := r.URL.Query()["created_at"]
		assert.Contains(t, bounds, "gte."+start.Format(time.RFC3339))
		assert.Contains(t, bounds, "lte."+end.Format(time.RFC3339))
		json.NewEncoder(w).Encode([]leadRow{})
	})

	leads, err := repo.FindByDateRange(context.Background(), start, end)

	assert.NoError(t, err)
	assert.Empty(t, leads)
}

func TestCountByStatusZeroFillsEveryStatus(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "status", r.URL.Query().Get("select"))
		json.NewEncoder(w).Encode([]statusRow{
			{Status: "new"}, {Status: "new"}, {Status: "converted"},
		})
	})

	counts, err := repo.CountByStatus(context.Background())

	assert.NoError(t, err)
	assert.Len(t, counts, len(entity.AllLeadStatuses()))

	byStatus := make(map[entity.LeadStatus]int)
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	assert.Equal(t, 2, byStatus[entity.StatusNew])
	assert.Equal(t, 1, byStatus[entity.StatusConverted])
	assert.Equal(t, 0, byStatus[entity.StatusLost])
}

func TestAggregatesDegradeToZeroOnFailure(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	total, err := repo.TotalValue(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, total)

	rate, err := repo.ConversionRate(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, rate)
}

func TestTotalValueSkipsNullValues(t *testing.T) {
	_, repo := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "value", r.URL.Query().Get("select"))
		w.Write([]byte(`[{"value": 15000}, {"value": null}, {"value": 25000}]`))
	})

	total, err := repo.TotalValue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 40000.0, total)
}

package memory

import (
	"time"

	"github.com/kervincort225/vyntra/internal/entity"
)

// SampleLeads returns the development seed used when the process falls back
// to the in-memory store, so the dashboard has something to show.
func SampleLeads() []entity.Lead {
	carlosValue := 15000.0
	anaValue := 25000.0
	anaContact := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	return []entity.Lead{
		{
			ID:         "a3c9f1d2-8f4b-4a17-9d26-0c51e7b8e001",
			Name:       "Carlos Mendez",
			Email:      "carlos@empresa.com",
			Phone:      "+56 9 1234 5678",
			Company:    "Empresa Tecnológica",
			Source:     entity.SourceChatbot,
			Status:     entity.StatusNew,
			Message:    "Interesado en automatización de procesos para su empresa. Necesita cotización urgente.",
			Value:      &carlosValue,
			Priority:   entity.PriorityHigh,
			AssignedTo: "Juan Pérez",
			Notes:      "Cliente potencial muy interesado, seguir en 24h",
			CreatedAt:  time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "b7e2c4a9-1d63-4f80-b5aa-3f92d6c4e002",
			Name:        "Ana Rodriguez",
			Email:       "ana@negocio.cl",
			Phone:       "+56 9 8765 4321",
			Company:     "Negocio Digital",
			Source:      entity.SourceForm,
			Status:      entity.StatusContacted,
			Message:     "Necesita cotización para desarrollo de SaaS para su negocio",
			Value:       &anaValue,
			Priority:    entity.PriorityHigh,
			AssignedTo:  "María García",
			LastContact: &anaContact,
			Notes:       "Reunión programada para el viernes",
			CreatedAt:   time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		},
	}
}

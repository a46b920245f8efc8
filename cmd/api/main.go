package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kervincort225/vyntra/internal/config"
	"github.com/kervincort225/vyntra/internal/infra/http/handlers"
	custommw "github.com/kervincort225/vyntra/internal/infra/http/middleware"
	"github.com/kervincort225/vyntra/internal/infra/memory"
	"github.com/kervincort225/vyntra/internal/infra/repository"
	"github.com/kervincort225/vyntra/internal/service"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	// 1. Repository (Supabase when configured, seeded mock otherwise)
	factory := repository.NewFactory(cfg, memory.SampleLeads()...)

	// 2. Service façade
	leadService := service.NewLeadService(factory)

	// 3. Handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	healthHandler := handlers.NewHealthHandler(leadService)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(custommw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api/leads", func(r chi.Router) {
		r.Post("/", leadHandler.Create)
		r.Get("/", leadHandler.List)
		r.Get("/metrics", leadHandler.Metrics)
		r.Get("/{id}", leadHandler.GetByID)
		r.Patch("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("Vyntra API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

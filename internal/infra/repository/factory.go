// Package repository selects which lead store adapter the process runs on.
package repository

import (
	"log"
	"sync"

	"github.com/kervincort225/vyntra/internal/config"
	"github.com/kervincort225/vyntra/internal/entity"
	"github.com/kervincort225/vyntra/internal/infra/memory"
	"github.com/kervincort225/vyntra/internal/infra/supabase"
)

// Factory picks between the Supabase adapter and the in-memory adapter and
// hands out one shared instance for the life of the process. The decision is
// made on first Get: both SUPABASE_URL and SUPABASE_SERVICE_KEY present
// means remote, anything else falls back to the mock so the app keeps
// working without a backend.
//
// The factory is constructed in main and passed down explicitly; it holds no
// package-level state.
type Factory struct {
	mu   sync.Mutex
	cfg  *config.Config
	seed []entity.Lead

	repo   entity.LeadRepository
	remote bool
}

// NewFactory builds a factory over the given configuration. The seed leads,
// if any, populate the in-memory store when the fallback is taken.
func NewFactory(cfg *config.Config, seed ...entity.Lead) *Factory {
	return &Factory{cfg: cfg, seed: seed}
}

// Get returns the memoized repository, resolving it on first use.
func (f *Factory) Get() entity.LeadRepository {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resolve()
	return f.repo
}

// UsingRemote reports whether the resolved repository talks to Supabase.
func (f *Factory) UsingRemote() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resolve()
	return f.remote
}

// Reset drops the cached instance so the next Get re-reads the
// configuration. Only meant for tests.
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.repo = nil
	f.remote = false
}

// resolve must be called with the lock held.
func (f *Factory) resolve() {
	if f.repo != nil {
		return
	}

	if f.cfg.SupabaseConfigured() {
		log.Println("leads: using Supabase store")
		f.repo = supabase.NewLeadRepository(supabase.NewClient(f.cfg.SupabaseURL, f.cfg.SupabaseServiceKey))
		f.remote = true
		return
	}

	log.Println("leads: Supabase not configured, using in-memory store")
	f.repo = memory.NewLeadRepository(f.seed...)
	f.remote = false
}

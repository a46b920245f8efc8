package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kervincort225/vyntra/internal/config"
	"github.com/kervincort225/vyntra/internal/infra/memory"
	"github.com/kervincort225/vyntra/internal/infra/supabase"
)

func TestFactoryFallsBackToMemoryWithoutConfig(t *testing.T) {
	f := NewFactory(&config.Config{})

	repo := f.Get()

	assert.IsType(t, &memory.LeadRepository{}, repo)
	assert.False(t, f.UsingRemote())
}

func TestFactoryNeedsBothRemoteValues(t *testing.T) {
	f := NewFactory(&config.Config{SupabaseURL: "https://example.supabase.co"})

	assert.IsType(t, &memory.LeadRepository{}, f.Get())
	assert.False(t, f.UsingRemote())
}

func TestFactorySelectsSupabaseWhenConfigured(t *testing.T) {
	f := NewFactory(&config.Config{
		SupabaseURL:        "https://example.supabase.co",
		SupabaseServiceKey: "service-key",
	})

	repo := f.Get()

	assert.IsType(t, &supabase.LeadRepository{}, repo)
	assert.True(t, f.UsingRemote())
}

func TestFactoryMemoizesInstance(t *testing.T) {
	f := NewFactory(&config.Config{})

	assert.Same(t, f.Get(), f.Get())
}

func TestResetForcesReevaluation(t *testing.T) {
	f := NewFactory(&config.Config{})

	first := f.Get()
	f.Reset()
	second := f.Get()

	assert.NotSame(t, first, second)
}

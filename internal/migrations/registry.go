package migrations

import (
	"sort"
	"sync"
)

// DefaultRegistry holds the migrations registered from init functions
var DefaultRegistry = NewRegistry()

type Registry struct {
	mu         sync.RWMutex
	migrations map[float64]Migration
}

func NewRegistry() *Registry {
	return &Registry{migrations: make(map[float64]Migration)}
}

// Register adds a migration, replacing any previous one for the same version
func (r *Registry) Register(migration Migration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrations[migration.GetMajorVersion()] = migration
}

// GetMigrations returns the migrations in ascending version order
func (r *Registry) GetMigrations() []Migration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Migration, 0, len(r.migrations))
	for _, m := range r.migrations {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetMajorVersion() < out[j].GetMajorVersion()
	})
	return out
}

func (r *Registry) GetMigration(version float64) (Migration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.migrations[version]
	return m, ok
}

// Register adds a migration to the default registry
func Register(migration Migration) {
	DefaultRegistry.Register(migration)
}

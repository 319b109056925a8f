package ec

import (
	"math/rand"
	"sync"
)

// DefaultMigrator returns the population unchanged.
type DefaultMigrator struct{}

func (DefaultMigrator) Migrate(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	return population, nil
}

// RingMigrator connects concurrently running engines into a migration
// ring. Each engine sends a random emigrant into a shared buffered
// queue and, when an immigrant from another engine is available, swaps
// it in at the emigrant's slot. The queue never blocks: when it is
// full the emigrant is dropped, and when it is empty the population is
// returned unchanged.
//
// A single RingMigrator should be shared by every participating
// engine.
type RingMigrator struct {
	mu    sync.Mutex
	queue chan *Individual
}

// NewRingMigrator creates a migrator whose queue holds up to size
// in-flight migrants.
func NewRingMigrator(size int) *RingMigrator {
	if size < 1 {
		size = 1
	}
	return &RingMigrator{queue: make(chan *Individual, size)}
}

func (m *RingMigrator) Migrate(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	if len(population) == 0 {
		return population, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := r.Intn(len(population))
	emigrant := population[idx].Clone()

	select {
	case immigrant := <-m.queue:
		migrated := append([]*Individual(nil), population...)
		migrated[idx] = immigrant
		population = migrated
	default:
	}
	select {
	case m.queue <- emigrant:
	default:
	}
	return population, nil
}

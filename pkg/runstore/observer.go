package runstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/XiaoConstantine/evo-go/pkg/ec"
	"github.com/XiaoConstantine/evo-go/pkg/logging"
	"github.com/XiaoConstantine/evo-go/pkg/stats"
)

// Observer persists each generation's fitness summary as it happens.
// Storage failures are logged and swallowed: a broken statistics sink
// must not abort an optimization run.
type Observer struct {
	store  *Store
	runID  string
	logger *logging.Logger
}

// NewObserver binds a store to a fresh run ID.
func NewObserver(store *Store) *Observer {
	return &Observer{
		store:  store,
		runID:  uuid.New().String(),
		logger: logging.GetLogger(),
	}
}

// RunID identifies the rows this observer writes.
func (o *Observer) RunID() string { return o.runID }

func (o *Observer) Observe(population []*ec.Individual, numGenerations, numEvaluations int, args ec.Args) {
	values := ec.ScalarValues(population)
	if len(values) == 0 {
		// Non-scalar fitness has no summary row to write.
		return
	}
	rec := GenerationRecord{
		RunID:       o.runID,
		Generation:  numGenerations,
		Evaluations: numEvaluations,
		Summary:     stats.Summarize(values),
	}
	if err := o.store.RecordGeneration(context.Background(), rec); err != nil {
		o.logger.Error(context.Background(), "failed to persist generation %d: %v", numGenerations, err)
	}
}

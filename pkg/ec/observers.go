package ec

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/XiaoConstantine/evo-go/pkg/logging"
	"github.com/XiaoConstantine/evo-go/pkg/stats"
)

// BestObserver logs the best individual of each generation.
type BestObserver struct {
	Logger *logging.Logger
}

func (o BestObserver) Observe(population []*Individual, numGenerations, numEvaluations int, args Args) {
	logger := o.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(population) == 0 {
		return
	}
	best := Best(population)
	logger.Info(context.Background(), "generation %d (%s evaluations): best %v",
		numGenerations, humanize.Comma(int64(numEvaluations)), best)
}

// StatsObserver logs summary fitness statistics of each generation.
type StatsObserver struct {
	Logger *logging.Logger
}

func (o StatsObserver) Observe(population []*Individual, numGenerations, numEvaluations int, args Args) {
	logger := o.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}
	values := ScalarValues(population)
	if len(values) == 0 {
		return
	}
	s := stats.Summarize(values)
	logger.Info(context.Background(),
		"generation %d (%s evaluations): min=%g max=%g mean=%g median=%g stdev=%g",
		numGenerations, humanize.Comma(int64(numEvaluations)),
		s.Min, s.Max, s.Mean, s.Median, s.Stdev)
}

// FileObserver writes one CSV row of fitness statistics per generation.
type FileObserver struct {
	W io.Writer

	w *csv.Writer
}

func (o *FileObserver) Observe(population []*Individual, numGenerations, numEvaluations int, args Args) {
	if o.W == nil {
		return
	}
	if o.w == nil {
		o.w = csv.NewWriter(o.W)
		_ = o.w.Write([]string{"generation", "evaluations", "min", "max", "mean", "median", "stdev"})
	}
	s := stats.Summarize(ScalarValues(population))
	_ = o.w.Write([]string{
		strconv.Itoa(numGenerations),
		strconv.Itoa(numEvaluations),
		formatStat(s.Min),
		formatStat(s.Max),
		formatStat(s.Mean),
		formatStat(s.Median),
		formatStat(s.Stdev),
	})
	o.w.Flush()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

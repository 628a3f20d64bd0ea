package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"supergame/experiments/metrics"
	"supergame/game"
	"supergame/strategy"
)

const DefaultGoroutines = 8

// Subject is one participant's session: the opponent's play they faced and,
// when known, their own play.
type Subject struct {
	ID      string
	History game.History
	Own     []game.Action
}

func (s Subject) Validate() error {
	if err := s.History.Validate(); err != nil {
		return err
	}
	if s.Own == nil {
		return nil
	}
	if len(s.Own) != s.History.Len() {
		return fmt.Errorf("%w: %d own actions, %d rounds", game.ErrLengthMismatch, len(s.Own), s.History.Len())
	}
	for t, a := range s.Own {
		if !a.Valid() {
			return fmt.Errorf("%w: own action %v at step %d", game.ErrMalformedInput, a, t)
		}
	}
	return nil
}

// Evaluation holds every strategy's prediction for one subject, indexed like
// Result.Strategies.
type Evaluation struct {
	Subject   Subject
	Predicted [][]game.Action
	Fits      []metrics.Fit
}

type Result struct {
	Strategies  []string
	Evaluations []Evaluation
	Skipped     []string
	Metric      metrics.RunMetric
}

type Option func(r *Runner)

type Runner struct {
	catalog      *strategy.Catalog
	goroutines   int
	skipFailures bool
	metrics      metrics.Collector
	err          error
}

func WithGoroutines(goroutines int) Option {
	return func(r *Runner) {
		if goroutines > 0 {
			r.goroutines = goroutines
		}
	}
}

// WithStrategies restricts the run to the named strategies, in that order.
func WithStrategies(names ...string) Option {
	return func(r *Runner) {
		if len(names) == 0 {
			return
		}
		subset, err := r.catalog.Subset(names...)
		if err != nil {
			r.err = err
			return
		}
		r.catalog = subset
	}
}

// WithSkipFailures logs and drops invalid subjects instead of failing the run.
func WithSkipFailures() Option {
	return func(r *Runner) {
		r.skipFailures = true
	}
}

func WithMetrics() Option {
	return func(r *Runner) {
		r.metrics = metrics.NewCollector()
	}
}

func NewRunner(catalog *strategy.Catalog, options ...Option) (*Runner, error) {
	r := &Runner{ // Default values
		catalog:    catalog,
		goroutines: DefaultGoroutines,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	if r.err != nil {
		return nil, r.err
	}
	return r, nil
}

func (r *Runner) Strategies() []string {
	return r.catalog.Names()
}

// Run evaluates every strategy against every subject. Evaluations run
// concurrently, one task per (strategy, subject) pair, but the result is
// ordered by subject and then by catalog order.
func (r *Runner) Run(ctx context.Context, subjects []Subject) (Result, error) {
	strategies := r.catalog.Strategies()
	result := Result{Strategies: r.catalog.Names()}
	r.metrics.Start(r.goroutines, len(strategies), len(subjects))

	accepted := make([]Subject, 0, len(subjects))
	for _, subject := range subjects {
		if err := subject.Validate(); err != nil {
			r.metrics.AddFailure()
			if !r.skipFailures {
				return Result{}, fmt.Errorf("subject %s: %w", subject.ID, err)
			}
			log.Warn().Msgf("skipping subject %s: %v", subject.ID, err)
			result.Skipped = append(result.Skipped, subject.ID)
			continue
		}
		accepted = append(accepted, subject)
	}

	log.Info().Msgf("starting evaluation of %d subjects against %d strategies...", len(accepted), len(strategies))

	evaluations := make([]Evaluation, len(accepted))
	for i, subject := range accepted {
		evaluations[i] = Evaluation{
			Subject:   subject,
			Predicted: make([][]game.Action, len(strategies)),
			Fits:      make([]metrics.Fit, len(strategies)),
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.goroutines)
	for i := range accepted {
		for j := range strategies {
			i, j := i, j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				subject := accepted[i]
				predicted, err := strategies[j].Play(subject.History)
				if err != nil {
					r.metrics.AddFailure()
					return fmt.Errorf("subject %s: %w", subject.ID, err)
				}

				evaluations[i].Predicted[j] = predicted
				evaluations[i].Fits[j] = Score(subject.Own, predicted)
				r.metrics.AddEvaluation()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result.Evaluations = evaluations
	result.Metric = r.metrics.Complete()

	log.Info().Msgf("completed evaluation of %d subjects (%d skipped)", len(result.Evaluations), len(result.Skipped))
	return result, nil
}

// Score compares a subject's own play with a prediction. Rounds where either
// is Missing are left out.
func Score(own, predicted []game.Action) metrics.Fit {
	var fit metrics.Fit
	for t := 0; t < len(own) && t < len(predicted); t++ {
		if !own[t].Observed() || !predicted[t].Observed() {
			continue
		}
		fit.Observed++
		if own[t] == predicted[t] {
			fit.Agreed++
		}
	}
	return fit
}

// PredictionRows flattens the result into one row per subject and step.
func (r Result) PredictionRows() []metrics.PredictionRow {
	var rows []metrics.PredictionRow
	for _, evaluation := range r.Evaluations {
		subject := evaluation.Subject
		for t := 0; t < subject.History.Len(); t++ {
			row := metrics.PredictionRow{
				Subject:   subject.ID,
				Period:    subject.History.Periods[t],
				Action:    subject.History.Actions[t],
				Own:       game.Missing,
				Predicted: make([]game.Action, len(r.Strategies)),
			}
			if subject.Own != nil {
				row.Own = subject.Own[t]
			}
			for j := range r.Strategies {
				row.Predicted[j] = evaluation.Predicted[j][t]
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func (r Result) FitRecords() []metrics.FitRecord {
	var records []metrics.FitRecord
	for _, evaluation := range r.Evaluations {
		for j, name := range r.Strategies {
			records = append(records, metrics.FitRecord{
				Subject:  evaluation.Subject.ID,
				Strategy: name,
				Fit:      evaluation.Fits[j],
			})
		}
	}
	return records
}

// BestFit returns, for every subject with observed own play, the strategy
// with the highest agreement rate. Ties go to the strategy listed first.
func (r Result) BestFit() map[string]string {
	best := make(map[string]string, len(r.Evaluations))
	for _, evaluation := range r.Evaluations {
		bestRate := -1.0
		for j, fit := range evaluation.Fits {
			if fit.Observed == 0 {
				continue
			}
			if rate := fit.Rate(); rate > bestRate {
				bestRate = rate
				best[evaluation.Subject.ID] = r.Strategies[j]
			}
		}
	}
	return best
}

// Store writes the result's records to a new directory under root.
func Store(root, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(metrics.Setup{
		Name:       name,
		Strategies: result.Strategies,
		Skipped:    result.Skipped,
		Run:        result.Metric,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	if err := writer.WritePredictions(result.Strategies, result.PredictionRows()); err != nil {
		return "", fmt.Errorf("failed to store predictions: %w", err)
	}
	log.Info().Msg("stored predictions")

	if err := writer.WriteFits(result.FitRecords()); err != nil {
		return "", fmt.Errorf("failed to store fits: %w", err)
	}
	log.Info().Msg("stored fits")

	return writer.Dir(), nil
}

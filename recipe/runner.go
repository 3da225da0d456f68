package recipe

import (
	"context"
	"time"

	"github.com/StarQTius/Little-Type-Library/logger"
	"github.com/StarQTius/Little-Type-Library/observability"
	"github.com/StarQTius/Little-Type-Library/pipeline"
	"github.com/StarQTius/Little-Type-Library/ranges"
	"github.com/StarQTius/Little-Type-Library/validation"
)

// Result is the outcome of a successful run.
type Result struct {
	RunID    string
	Recipe   string
	Stages   string
	Values   []int
	Duration time.Duration
}

// Runner runs recipes. A nil metrics skips metric recording.
type Runner struct {
	log     *logger.Logger
	metrics *observability.RecipeMetrics
}

// NewRunner creates a runner logging through log, or through the registered
// recipe logger when log is nil.
func NewRunner(log *logger.Logger, metrics *observability.RecipeMetrics) *Runner {
	if log == nil {
		log = logger.Get(logger.ComponentRecipe)
	}
	return &Runner{log: log, metrics: metrics}
}

// Run validates cfg, builds its pipeline and collects the pipeline applied
// to the source. Contract violations raised while iterating are returned as
// errors; cancelling ctx stops the run between elements.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	runID, err := validation.ParseRunID("run_id", cfg.RunID)
	if err != nil {
		return nil, err
	}
	ctx = logger.ContextWithRunID(ctx, runID.String())

	p, err := r.build(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rc := observability.NewRunContext(cfg.Name, runID.String(), p.Len(), r.metrics)
	ctx, span := rc.Start(ctx, observability.SpanRecipeRun)
	log := r.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldRecipe, cfg.Name,
		logger.FieldStages, p.String(),
	))

	values, err := collect(ctx, p, cfg.SourceView())
	rc.End(ctx, span, len(values), err)
	if err != nil {
		log.WithError(err).Error("recipe failed", logger.Fields(logger.FieldElements, len(values)))
		return nil, err
	}

	log.Info("recipe finished", logger.MergeWithDuration(
		logger.Fields(logger.FieldElements, len(values)), rc.Duration()))

	return &Result{
		RunID:    runID.String(),
		Recipe:   cfg.Name,
		Stages:   p.String(),
		Values:   values,
		Duration: rc.Duration(),
	}, nil
}

func (r *Runner) build(ctx context.Context, cfg Config) (ranges.Pipeline[int, int], error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanRecipeBuild)
	defer span.End()

	p, err := Build(cfg)
	if err != nil {
		observability.SetSpanError(ctx, err)
		r.log.WithContext(ctx).WithError(err).Error("recipe build failed",
			logger.Fields(logger.FieldRecipe, cfg.Name))
		return p, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrStages, p.Len())
	r.log.WithContext(ctx).Debug("recipe built", logger.Fields(
		logger.FieldRecipe, cfg.Name,
		logger.FieldStages, p.String(),
	))
	return p, nil
}

// collect binds p to src and pulls every element. Contract violations,
// including those raised by the first filter predicate while binding, come
// back as errors.
func collect(ctx context.Context, p ranges.Pipeline[int, int], src ranges.View[int]) ([]int, error) {
	return pipeline.Collect(ctx, pipeline.Apply(pipeline.FromView(src), p))
}

// Run runs cfg with the registered recipe logger and no metrics.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	return NewRunner(nil, nil).Run(ctx, cfg)
}

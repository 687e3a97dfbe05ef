// Package harness drives one evaluation run: for every (generator, size)
// case it builds the base instance, establishes ground truth, queries the
// reasoning agent, applies every metamorphic relation, and turns the oracle's
// verdicts into result records. Cases are independent and run in parallel;
// a failing case never aborts the batch.
package harness

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/gen"
	"github.com/realearn-people/benchmarking-aa-reasoning/metamorphic"
	"github.com/realearn-people/benchmarking-aa-reasoning/oracle"
	"github.com/realearn-people/benchmarking-aa-reasoning/pkg/metrics"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

// Harness wires the agent under test to the verification core.
type Harness struct {
	agent       core.AgentClient
	oracle      *oracle.Oracle
	generators  map[string]core.Generator
	relations   []metamorphic.Relation
	metrics     *metrics.EvaluationMetrics
	logger      *zap.Logger
	parallelism int
}

// Option configures a Harness.
type Option func(*Harness)

// WithGenerators replaces the default generator registry.
func WithGenerators(generators map[string]core.Generator) Option {
	return func(h *Harness) { h.generators = generators }
}

// WithRelations replaces the default relation catalog.
func WithRelations(relations []metamorphic.Relation) Option {
	return func(h *Harness) { h.relations = relations }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.EvaluationMetrics) Option {
	return func(h *Harness) { h.metrics = m }
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) { h.logger = logger }
}

// WithParallelism bounds concurrent cases. Cases share no state, so any
// bound is safe; records keep their deterministic order regardless.
func WithParallelism(n int) Option {
	return func(h *Harness) {
		if n > 0 {
			h.parallelism = n
		}
	}
}

// WithGroundTruthCache memoizes ground truth across cases.
func WithGroundTruthCache(cache *semantics.Cache) Option {
	return func(h *Harness) { h.oracle = oracle.New(cache) }
}

// New creates a harness for the given agent.
func New(agent core.AgentClient, opts ...Option) *Harness {
	h := &Harness{
		agent:       agent,
		oracle:      oracle.New(nil),
		generators:  gen.Suite(),
		relations:   metamorphic.Catalog(),
		logger:      zap.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type evalCase struct {
	generator string
	size      int
	seed      int64
}

// Run evaluates the whole plan and returns the result records in
// deterministic case order. Only context cancellation aborts the run; every
// per-case failure becomes a record.
func (h *Harness) Run(ctx context.Context, plan Plan) ([]core.ResultRecord, error) {
	cases := expand(plan)
	perCase := make([][]core.ResultRecord, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.parallelism)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perCase[i] = h.evaluate(ctx, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []core.ResultRecord
	for _, rs := range perCase {
		records = append(records, rs...)
	}
	h.count(records)
	return records, nil
}

// expand lists the plan's cases with one derived seed each, generators in
// sorted order so runs are reproducible.
func expand(plan Plan) []evalCase {
	names := append([]string(nil), plan.Generators...)
	sort.Strings(names)
	var cases []evalCase
	for _, name := range names {
		for _, size := range plan.Sizes {
			cases = append(cases, evalCase{
				generator: name,
				size:      size,
				seed:      plan.Seed + int64(len(cases)),
			})
		}
	}
	return cases
}

func (h *Harness) evaluate(ctx context.Context, c evalCase) []core.ResultRecord {
	logger := h.logger.With(zap.String("generator", c.generator), zap.Int("size", c.size))
	if h.metrics != nil {
		h.metrics.CasesTotal.WithLabelValues(c.generator).Inc()
	}

	generate, ok := h.generators[c.generator]
	if !ok {
		logger.Error("unknown generator")
		return h.records(c, "base", oracle.AgentFailure("config", "unknown generator "+c.generator))
	}

	base, err := generate(c.size)
	if err != nil {
		// Below the topology's minimum size: the case is reported and
		// skipped, the batch continues.
		logger.Warn("case skipped", zap.Error(err))
		if h.metrics != nil {
			h.metrics.CasesSkipped.WithLabelValues(c.generator).Inc()
		}
		return h.records(c, "base", oracle.AgentFailure("config", err.Error()))
	}

	baseClaim, err := h.query(ctx, logger, base)
	if err != nil {
		// Without a usable base answer the cross-instance checks have
		// nothing to compare against; the whole case becomes error verdicts.
		out := h.records(c, "base", oracle.AgentFailure("agent", err.Error()))
		for _, rel := range h.relations {
			out = append(out, h.records(c, rel.Name(), oracle.AgentFailure("agent", "base answer unusable: "+err.Error()))...)
		}
		return out
	}

	verdicts := h.oracle.CheckBase(base, baseClaim)
	verdicts = append(verdicts, h.oracle.CheckProperties(base, baseClaim)...)
	out := h.records(c, "base", verdicts)
	logger.Info("base instance checked", zap.Int("verdicts", len(verdicts)))

	rng := rand.New(rand.NewSource(c.seed))
	for _, rel := range h.relations {
		out = append(out, h.evaluateRelation(ctx, logger, c, rel, base, baseClaim, rng)...)
	}
	return out
}

func (h *Harness) evaluateRelation(ctx context.Context, logger *zap.Logger, c evalCase, rel metamorphic.Relation, base *core.AF, baseClaim core.Claim, rng *rand.Rand) []core.ResultRecord {
	logger = logger.With(zap.String("relation", rel.Name()))

	tr, err := rel.Apply(base, rng)
	if err != nil {
		var cerr *core.ConfigurationError
		if errors.As(err, &cerr) {
			logger.Warn("relation skipped", zap.Error(err))
			if h.metrics != nil {
				h.metrics.CasesSkipped.WithLabelValues(c.generator).Inc()
			}
			return h.records(c, rel.Name(), oracle.AgentFailure("config", err.Error()))
		}
		logger.Error("relation failed to apply", zap.Error(err))
		return h.records(c, rel.Name(), oracle.AgentFailure("config", err.Error()))
	}

	targetClaim, err := h.query(ctx, logger, tr.Target)
	if err != nil {
		return h.records(c, rel.Name(), oracle.AgentFailure("agent", err.Error()))
	}

	// Transformed instances get the self-consistency and cross-instance
	// checks; validity against enumerated ground truth stays on the base.
	verdicts := h.oracle.CheckProperties(tr.Target, targetClaim)
	verdicts = append(verdicts, h.oracle.CheckRelation(rel, tr, baseClaim, targetClaim)...)
	logger.Info("relation checked", zap.Int("verdicts", len(verdicts)))
	return h.records(c, rel.Name(), verdicts)
}

func (h *Harness) query(ctx context.Context, logger *zap.Logger, af *core.AF) (core.Claim, error) {
	start := time.Now()
	claim, err := h.agent.Extensions(ctx, af)
	if h.metrics != nil {
		h.metrics.ObserveAgentRequest(h.agent.Name(), start, err)
	}
	if err != nil {
		logger.Warn("agent answer unusable", zap.String("framework", af.Name()), zap.Error(err))
		return nil, err
	}
	return claim, nil
}

func (h *Harness) records(c evalCase, relation string, verdicts []core.Verdict) []core.ResultRecord {
	out := make([]core.ResultRecord, 0, len(verdicts))
	for _, v := range verdicts {
		out = append(out, core.ResultRecord{
			Version:    core.RecordVersion,
			Generator:  c.generator,
			Size:       c.size,
			Relation:   relation,
			Semantics:  v.Semantics,
			Check:      v.Check,
			Claimed:    v.Claimed,
			Expected:   v.Expected,
			Verdict:    v.Status,
			Violations: v.Violations,
		})
	}
	return out
}

func (h *Harness) count(records []core.ResultRecord) {
	if h.metrics == nil {
		return
	}
	for _, r := range records {
		h.metrics.VerdictsTotal.WithLabelValues(r.Generator, r.Relation, string(r.Semantics), string(r.Verdict)).Inc()
	}
}

package harness

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realearn-people/benchmarking-aa-reasoning/agent/mock"
	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/metamorphic"
	"github.com/realearn-people/benchmarking-aa-reasoning/pkg/metrics"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

func statusCounts(records []core.ResultRecord) map[core.VerdictStatus]int {
	counts := make(map[core.VerdictStatus]int)
	for _, r := range records {
		counts[r.Verdict]++
	}
	return counts
}

func filterRelation(records []core.ResultRecord, relation string) []core.ResultRecord {
	var out []core.ResultRecord
	for _, r := range records {
		if r.Relation == relation {
			out = append(out, r)
		}
	}
	return out
}

func TestRun_ExactAgentPassesEverything(t *testing.T) {
	cache, err := semantics.NewCache(64)
	require.NoError(t, err)
	h := New(mock.New(mock.ModeExact), WithGroundTruthCache(cache))

	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"linear_attack_chain", "cycle", "symmetric_pairs"},
		Sizes:      []int{4, 8},
		Seed:       1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for _, r := range records {
		assert.Equal(t, core.VerdictPass, r.Verdict,
			"%s n=%d %s %s/%s: %v", r.Generator, r.Size, r.Relation, r.Check, r.Semantics, r.Violations)
		assert.Equal(t, core.RecordVersion, r.Version)
	}
}

func TestRun_RecordsEveryRelation(t *testing.T) {
	h := New(mock.New(mock.ModeExact))

	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"linear_attack_chain"},
		Sizes:      []int{4},
		Seed:       1,
	})
	require.NoError(t, err)

	relations := map[string]bool{}
	for _, r := range records {
		relations[r.Relation] = true
	}
	assert.True(t, relations["base"])
	for _, rel := range metamorphic.Catalog() {
		assert.True(t, relations[rel.Name()], "no records for %s", rel.Name())
	}
}

func TestRun_IncompleteAgentFailsStableChecks(t *testing.T) {
	h := New(mock.New(mock.ModeIncomplete))

	// A four-cycle has stable extensions, so claiming none fails validity.
	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"cycle"},
		Sizes:      []int{4},
		Seed:       1,
	})
	require.NoError(t, err)

	var stableFailures int
	for _, r := range filterRelation(records, "base") {
		if r.Check == "validity" && r.Semantics == core.StableSemantics {
			assert.Equal(t, core.VerdictFail, r.Verdict)
			stableFailures++
		}
	}
	assert.Equal(t, 1, stableFailures)
}

func TestRun_GarbageAgentYieldsErrorVerdicts(t *testing.T) {
	h := New(mock.New(mock.ModeGarbage))

	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"linear_attack_chain"},
		Sizes:      []int{4},
		Seed:       1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, records)

	// An unusable base answer poisons the whole case: error verdicts for the
	// base instance and for every relation, but never pass or fail.
	counts := statusCounts(records)
	assert.Zero(t, counts[core.VerdictPass])
	assert.Zero(t, counts[core.VerdictFail])
	assert.Equal(t, len(records), counts[core.VerdictError])

	relations := map[string]bool{}
	for _, r := range records {
		relations[r.Relation] = true
	}
	assert.True(t, relations["base"])
	for _, rel := range metamorphic.Catalog() {
		assert.True(t, relations[rel.Name()])
	}
}

func TestRun_RenameBlindAgentFailsIsomorphism(t *testing.T) {
	h := New(mock.New(mock.ModeRenameBlind))

	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"linear_attack_chain"},
		Sizes:      []int{4},
		Seed:       1,
	})
	require.NoError(t, err)

	// The mock answers the base correctly (it has nothing earlier to echo),
	// then echoes stale truths for the transformed instances.
	for _, r := range filterRelation(records, "base") {
		assert.Equal(t, core.VerdictPass, r.Verdict, "%s/%s", r.Check, r.Semantics)
	}

	var isoFailures int
	for _, r := range filterRelation(records, "isomorphism") {
		if r.Check == "MR-ISO" && r.Verdict == core.VerdictFail {
			isoFailures++
		}
	}
	assert.NotZero(t, isoFailures)
}

func TestRun_StatefulMockUnderParallelism(t *testing.T) {
	h := New(mock.New(mock.ModeRenameBlind), WithParallelism(4))

	// With concurrent cases the echo order is nondeterministic, so only the
	// record shape is asserted; the race detector covers the shared state.
	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"linear_attack_chain", "cycle", "symmetric_pairs"},
		Sizes:      []int{4, 6, 8},
		Seed:       1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, r := range records {
		assert.Contains(t, []core.VerdictStatus{core.VerdictPass, core.VerdictFail}, r.Verdict)
	}
}

func TestRun_UndersizedCaseIsSkippedNotFatal(t *testing.T) {
	h := New(mock.New(mock.ModeExact))

	// Size 1 is below the chain's minimum; size 4 must still run.
	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"linear_attack_chain"},
		Sizes:      []int{1, 4},
		Seed:       1,
	})
	require.NoError(t, err)

	var skipped, passed []core.ResultRecord
	for _, r := range records {
		switch r.Size {
		case 1:
			skipped = append(skipped, r)
		case 4:
			passed = append(passed, r)
		}
	}
	require.NotEmpty(t, skipped)
	for _, r := range skipped {
		assert.Equal(t, core.VerdictError, r.Verdict)
		assert.Equal(t, "config", r.Check)
	}
	require.NotEmpty(t, passed)
	for _, r := range passed {
		assert.Equal(t, core.VerdictPass, r.Verdict)
	}
}

func TestRun_UnknownGeneratorReported(t *testing.T) {
	h := New(mock.New(mock.ModeExact))

	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"no_such_topology"},
		Sizes:      []int{4},
		Seed:       1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, r := range records {
		assert.Equal(t, core.VerdictError, r.Verdict)
	}
}

func TestRun_DeterministicCaseOrder(t *testing.T) {
	plan := Plan{
		Generators: []string{"symmetric_pairs", "cycle"},
		Sizes:      []int{4, 6},
		Seed:       7,
	}

	run := func() []core.ResultRecord {
		h := New(mock.New(mock.ModeExact))
		records, err := h.Run(context.Background(), plan)
		require.NoError(t, err)
		return records
	}

	first, second := run(), run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i], "record %d differs between runs", i)
	}

	// Generators are visited in sorted order regardless of plan order.
	assert.Equal(t, "cycle", first[0].Generator)
}

func TestRun_MetricsCountVerdicts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := New(mock.New(mock.ModeExact), WithMetrics(m))

	records, err := h.Run(context.Background(), Plan{
		Generators: []string{"cycle"},
		Sizes:      []int{4},
		Seed:       1,
	})
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, fam := range families {
		if fam.GetName() != "afbench_verdicts_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(len(records)), total)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := New(mock.New(mock.ModeExact))
	_, err := h.Run(ctx, Plan{
		Generators: []string{"cycle"},
		Sizes:      []int{4},
		Seed:       1,
	})
	assert.Error(t, err)
}

package mock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/gen"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

func TestExact_AnswersGroundTruth(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	claim, err := New(ModeExact).Extensions(context.Background(), af)
	require.NoError(t, err)
	assert.True(t, claim[core.GroundedSemantics].Equal(semantics.Extensions(af)[core.GroundedSemantics]))
}

func TestGarbage_ReturnsResponseError(t *testing.T) {
	af, err := gen.Chain(3)
	require.NoError(t, err)

	_, err = New(ModeGarbage).Extensions(context.Background(), af)
	var rerr *core.AgentResponseError
	require.ErrorAs(t, err, &rerr)
}

func TestRenameBlind_EchoesPreviousFramework(t *testing.T) {
	first, err := gen.Chain(3)
	require.NoError(t, err)
	second, err := gen.Cycle(3)
	require.NoError(t, err)

	client := New(ModeRenameBlind)
	ctx := context.Background()

	claim, err := client.Extensions(ctx, first)
	require.NoError(t, err)
	assert.True(t, claim[core.GroundedSemantics].Equal(semantics.Extensions(first)[core.GroundedSemantics]))

	stale, err := client.Extensions(ctx, second)
	require.NoError(t, err)
	assert.True(t, stale[core.GroundedSemantics].Equal(semantics.Extensions(first)[core.GroundedSemantics]))
}

func TestRenameBlind_ConcurrentUse(t *testing.T) {
	frameworks := make([]*core.AF, 8)
	for i := range frameworks {
		af, err := gen.Chain(i + 2)
		require.NoError(t, err)
		frameworks[i] = af
	}

	client := New(ModeRenameBlind)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, af := range frameworks {
		af := af
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Extensions(ctx, af)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

// Package mock provides an in-process reasoning agent backed by the
// verifier's ground truth, with failure modes for exercising the oracle and
// harness without network access.
package mock

import (
	"context"
	"sync"

	"github.com/realearn-people/benchmarking-aa-reasoning/agent"
	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

// Mode selects how faithfully the mock answers.
type Mode string

const (
	// ModeExact answers with the ground truth.
	ModeExact Mode = "exact"
	// ModeIncomplete claims no stable extension exists, whatever the truth.
	ModeIncomplete Mode = "incomplete"
	// ModeRenameBlind answers every framework with the ground truth of the
	// previous framework it saw, simulating an agent that ignores relabeling.
	ModeRenameBlind Mode = "rename-blind"
	// ModeGarbage replies with prose instead of the JSON schema.
	ModeGarbage Mode = "garbage"
)

// Client implements core.AgentClient. It is safe for concurrent use; the
// rename-blind mode serializes on the previous-framework state.
type Client struct {
	mode Mode

	mu   sync.Mutex
	prev *core.AF
}

// New creates a mock agent. An empty mode defaults to exact answers.
func New(mode Mode) *Client {
	if mode == "" {
		mode = ModeExact
	}
	return &Client{mode: mode}
}

func (c *Client) Name() string { return "mock:" + string(c.mode) }

// Extensions answers for af according to the configured mode. Every answer
// travels through the real encode/parse path so the mock exercises the same
// schema the network clients do.
func (c *Client) Extensions(ctx context.Context, af *core.AF) (core.Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch c.mode {
	case ModeGarbage:
		_, err := agent.ParseClaim(af, []byte("I believe the acceptable arguments form the set {A1, A3}."))
		return nil, err

	case ModeRenameBlind:
		c.mu.Lock()
		answered := af
		if c.prev != nil {
			answered = c.prev
		}
		c.prev = af
		c.mu.Unlock()
		raw := agent.EncodeClaim(semantics.Extensions(answered))
		return agent.ParseClaim(answered, raw)

	case ModeIncomplete:
		truth := semantics.Extensions(af)
		truth[core.StableSemantics] = core.NewExtensionSet()
		return agent.ParseClaim(af, agent.EncodeClaim(truth))

	default:
		return agent.ParseClaim(af, agent.EncodeClaim(semantics.Extensions(af)))
	}
}

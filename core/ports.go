package core

import "context"

// AgentClient is the boundary to the reasoning agent under test. The core
// hands it a framework and consumes back a full claim, or an error when the
// agent produced no usable answer. Parse failures must surface as
// *AgentResponseError, never as a silently empty claim.
type AgentClient interface {
	Name() string
	Extensions(ctx context.Context, af *AF) (Claim, error)
}

// Generator produces one framework of the requested size. Implementations are
// pure: the same size always yields the same framework.
type Generator func(n int) (*AF, error)

// Package openai implements the reasoning-agent boundary over any
// OpenAI-compatible chat API. Calls pass through a rate limiter and a circuit
// breaker; unusable replies surface as *core.AgentResponseError so the oracle
// records them as error verdicts rather than wrong answers.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/realearn-people/benchmarking-aa-reasoning/agent"
	"github.com/realearn-people/benchmarking-aa-reasoning/core"
)

// Config holds the connection and resilience settings for one model under
// test. The zero values of the optional fields fall back to defaults.
type Config struct {
	Model      string
	APIKey     string
	BaseURL    string // empty for api.openai.com; set for local or proxy endpoints
	MaxRetries int
	RetryDelay time.Duration
	// RequestsPerMinute throttles outgoing queries. Zero means no throttle.
	RequestsPerMinute float64
	Logger            *zap.Logger
}

// Client implements core.AgentClient.
type Client struct {
	client     *openai.Client
	model      string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	encoder    *tiktoken.Tiktoken
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// New creates a client for the configured model.
func New(cfg Config) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60), 1)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "agent-" + cfg.Model,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
	})

	// Token accounting is best-effort; an unknown model keeps a nil encoder.
	encoder, err := tiktoken.EncodingForModel(cfg.Model)
	if err != nil {
		encoder = nil
	}

	return &Client{
		client:     openai.NewClientWithConfig(apiCfg),
		model:      cfg.Model,
		limiter:    limiter,
		breaker:    breaker,
		encoder:    encoder,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     cfg.Logger,
	}, nil
}

// Name returns the model identifier.
func (c *Client) Name() string { return c.model }

// Extensions queries the model for all four extension types of af and parses
// the reply. Transport failures are retried with a delay; a reply that cannot
// be mapped onto af's arguments is an AgentResponseError and is not retried.
func (c *Client) Extensions(ctx context.Context, af *core.AF) (core.Claim, error) {
	prompt := agent.Prompt(af)
	c.logger.Info("querying agent",
		zap.String("model", c.model),
		zap.String("framework", af.Name()),
		zap.Int("prompt_tokens", c.countTokens(agent.Instruction+prompt)),
	)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		raw, err := c.complete(ctx, prompt)
		if err != nil {
			lastErr = err
			c.logger.Warn("agent request failed",
				zap.String("model", c.model),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			continue
		}
		return agent.ParseClaim(af, raw)
	}
	return nil, fmt.Errorf("agent %s unreachable after %d attempts: %w", c.model, c.maxRetries+1, lastErr)
}

func (c *Client) complete(ctx context.Context, prompt string) ([]byte, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: agent.Instruction},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("empty completion for model %s", c.model)
		}
		return []byte(resp.Choices[0].Message.Content), nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (c *Client) countTokens(text string) int {
	if c.encoder == nil {
		return len(text) / 4
	}
	return len(c.encoder.Encode(text, nil, nil))
}

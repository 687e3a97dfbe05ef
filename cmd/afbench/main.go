package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/realearn-people/benchmarking-aa-reasoning/agent/mock"
	agentopenai "github.com/realearn-people/benchmarking-aa-reasoning/agent/openai"
	"github.com/realearn-people/benchmarking-aa-reasoning/core"
	"github.com/realearn-people/benchmarking-aa-reasoning/harness"
	"github.com/realearn-people/benchmarking-aa-reasoning/pkg/logging"
	"github.com/realearn-people/benchmarking-aa-reasoning/pkg/metrics"
	"github.com/realearn-people/benchmarking-aa-reasoning/semantics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "afbench:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := harness.LoadConfig()

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	plan, err := harness.PlanFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}

	agent, err := buildAgent(cfg, logger)
	if err != nil {
		return fmt.Errorf("build agent: %w", err)
	}

	m := metrics.New(nil)
	cache, err := semantics.NewCache(cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	cache.OnLookup = func(hit bool) {
		result := "miss"
		if hit {
			result = "hit"
		}
		m.GroundTruthCache.WithLabelValues(result).Inc()
	}

	runLogger := logging.WithRun(logger, agent.Name(), plan.Seed)
	h := harness.New(agent,
		harness.WithLogger(runLogger),
		harness.WithMetrics(m),
		harness.WithGroundTruthCache(cache),
		harness.WithParallelism(cfg.Parallelism),
	)

	runLogger.Info("evaluation starting",
		zap.Strings("generators", plan.Generators),
		zap.Ints("sizes", plan.Sizes),
		zap.Int("parallelism", cfg.Parallelism))

	records, err := h.Run(ctx, plan)
	if err != nil {
		return fmt.Errorf("run evaluation: %w", err)
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()
	if err := writeRecords(out, records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	runLogger.Info("evaluation finished",
		zap.Int("records", len(records)),
		zap.Int("cached_frameworks", cache.Len()))
	return nil
}

func buildAgent(cfg *harness.Config, logger *zap.Logger) (core.AgentClient, error) {
	switch cfg.AgentMode {
	case "mock":
		return mock.New(mock.Mode(cfg.MockMode)), nil
	case "openai":
		return agentopenai.New(agentopenai.Config{
			Model:   cfg.Model,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Logger:  logger,
		})
	default:
		return nil, fmt.Errorf("unknown agent mode %q", cfg.AgentMode)
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// writeRecords emits one JSON object per line, in case order.
func writeRecords(w io.Writer, records []core.ResultRecord) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

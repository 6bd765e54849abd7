package worker

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// runConcurrent processes files in parallel with bounded concurrency.
// Recognizer launches are rate limited so concurrent whisper processes
// do not all load their models at once.
func runConcurrent(ctx context.Context, opts Options) ([]Result, error) {
	slog.Info("starting concurrent processing",
		"files", len(opts.Inputs),
		"jobs", opts.Jobs,
		"launch_rate_rpm", opts.RateLimitPerMin)

	limiter := rate.NewLimiter(rate.Limit(float64(opts.RateLimitPerMin)/60.0), 1)

	results := make([]Result, len(opts.Inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	for i, input := range opts.Inputs {
		i, input := i, input
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}

			results[i] = processFile(gctx, input, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

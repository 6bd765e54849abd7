package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// runSequential processes files one at a time.
func runSequential(ctx context.Context, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(opts.Inputs))

	for i, input := range opts.Inputs {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		slog.Info("processing file",
			"file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)),
			"name", filepath.Base(input))

		results = append(results, processFile(ctx, input, opts))
	}

	return results, nil
}

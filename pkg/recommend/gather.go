package recommend

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"roomstudio/pkg/logger"
)

// DefaultTimeout bounds GatherAll when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// GatherAll queries every source concurrently and returns the successful
// analyses in source order. Failing or timed-out sources are logged and
// skipped.
func GatherAll(ctx context.Context, room RoomContext, timeoutMs int, sources []Source) []*Analysis {
	timeout := DefaultTimeout
	if timeoutMs > 0 {
		timeout = time.Duration(timeoutMs) * time.Millisecond
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var g errgroup.Group
	results := make([]*Analysis, len(sources))

	for i, src := range sources {
		g.Go(func() error {
			a, err := src.Recommend(ctx, room)
			if err != nil {
				logger.Warn("Recommendation source failed", "source", src.Name(), "error", err)
				return nil
			}
			if a != nil && a.Source == "" {
				a.Source = src.Name()
			}
			// Each goroutine owns its own slot.
			results[i] = a
			return nil
		})
	}
	_ = g.Wait()

	out := results[:0]
	for _, a := range results {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Merge folds analyses into one, keeping the first non-empty scalar fields
// and concatenating furniture and placements in order.
func Merge(analyses []*Analysis) *Analysis {
	merged := &Analysis{}
	for _, a := range analyses {
		if a == nil {
			continue
		}
		if merged.Source == "" {
			merged.Source = a.Source
		}
		if merged.RoomType == "" {
			merged.RoomType = a.RoomType
		}
		if merged.Style == "" {
			merged.Style = a.Style
		}
		if merged.Summary == "" {
			merged.Summary = a.Summary
		}
		if len(merged.ColorScheme) == 0 {
			merged.ColorScheme = a.ColorScheme
		}
		merged.RecommendedFurniture = append(merged.RecommendedFurniture, a.RecommendedFurniture...)
		merged.DetailedPlacements = append(merged.DetailedPlacements, a.DetailedPlacements...)
	}
	return merged
}

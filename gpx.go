package main

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Fingel/rideprofile/metrics"
	"github.com/Fingel/rideprofile/source"
	"github.com/Fingel/rideprofile/track"
)

type result struct {
	summary metrics.Summary
	err     error
}

func summarize(e source.Entry) (metrics.Summary, error) {
	t, err := track.Parse(e.Data)
	if err != nil { return metrics.Summary{}, err }
	return metrics.Summarize(t)
}

// записи независимы, считаем параллельно; results[i] соответствует entries[i].
// ошибка разбора записи не отменяет остальные — её вернёт печать по порядку.
func summarizeAll(ctx context.Context, entries []source.Entry, workers int, onDone func()) ([]result, error) {
	results := make([]result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i := range entries {
		g.Go(func() error {
			select { case <-ctx.Done(): return ctx.Err(); default: }
			results[i].summary, results[i].err = summarize(entries[i])
			onDone()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package reference

import (
	"context"
	"fmt"
	"time"

	"product-alternatives/core/table"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads reference sheets on demand.
// Concurrent requests for the same sheet share a single fetch; results are never cached.
type Fetcher struct {
	source  Source
	timeout time.Duration
	logger  *zap.Logger
	group   singleflight.Group
}

// NewFetcher creates a fetcher over source. A zero timeout disables the per-fetch deadline.
func NewFetcher(source Source, timeout time.Duration, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{source: source, timeout: timeout, logger: logger}
}

// Source returns the underlying source.
func (f *Fetcher) Source() Source {
	return f.source
}

// Fetch returns a private copy of the sheet. Errors wrap ErrReferenceUnavailable
// and keep the underlying cause reachable through errors.Is.
func (f *Fetcher) Fetch(ctx context.Context, sheet string) (*table.Table, error) {
	ch := f.group.DoChan(sheet, func() (any, error) {
		// The shared fetch must not die with whichever caller started it
		fetchCtx := context.WithoutCancel(ctx)
		if f.timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, f.timeout)
			defer cancel()
		}

		start := time.Now()
		t, err := f.source.Fetch(fetchCtx, sheet)
		if err != nil {
			return nil, err
		}
		f.logger.Debug("Reference fetched",
			zap.String("source", f.source.Name()),
			zap.String("sheet", sheet),
			zap.Int("rows", t.Len()),
			zap.Duration("duration", time.Since(start)))
		return t, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrReferenceUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			f.logger.Warn("Reference fetch failed",
				zap.String("source", f.source.Name()),
				zap.String("sheet", sheet),
				zap.Bool("shared", res.Shared),
				zap.Error(res.Err))
			return nil, fmt.Errorf("%w: %s %s: %w", ErrReferenceUnavailable, f.source.Name(), sheet, res.Err)
		}
		// Callers normalize headers in place, so each gets its own copy
		return res.Val.(*table.Table).Clone(), nil
	}
}

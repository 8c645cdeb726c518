package feed

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Aggregator runs the fetch-and-merge pipeline over a fixed source list.
type Aggregator struct {
	fetcher Fetcher
	sources []Source
}

// NewAggregator creates an aggregator. Empty sources selects DefaultSources.
func NewAggregator(fetcher Fetcher, sources []Source) *Aggregator {
	if len(sources) == 0 {
		sources = DefaultSources
	}
	return &Aggregator{fetcher: fetcher, sources: sources}
}

// Sources returns the configured source list.
func (a *Aggregator) Sources() []Source {
	return a.sources
}

// FetchAll fetches every source concurrently and returns the combined item
// list sorted by publication time, newest first. A failed source contributes
// an empty list and never aborts the others; all sources failing yields an
// empty list and a nil error. Only cancellation of ctx itself propagates.
func (a *Aggregator) FetchAll(ctx context.Context) ([]Item, error) {
	perSource := make([][]Item, len(a.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		i, src := i, src
		g.Go(func() error {
			raws, err := a.fetcher.Fetch(gctx, src.URL)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				fmt.Printf("  feed: %s: %v\n", src.Name, err)
				return nil
			}
			items := make([]Item, 0, len(raws))
			for _, raw := range raws {
				items = append(items, normalize(raw, src))
			}
			perSource[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Concatenate in source-declaration order, then sort. The sort is
	// stable so same-instant items keep that order.
	var all []Item
	for _, items := range perSource {
		all = append(all, items...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PubDate.After(all[j].PubDate)
	})
	return all, nil
}

package streams

import (
	"context"
	"iter"
	"sync"
	"time"

	"elb-log-reports/internal/objectsources"
)

// FetchResult is one object's decompressed content, or the error that prevented reading it.
type FetchResult struct {
	Key  string
	Data []byte
	Err  error
}

// OrderedFetcher reads objects ahead of the consumer while still handing them over in key order.
//
// Concurrency bounds how many objects are being fetched, waiting, or being consumed at once:
//
//   - 1 is strictly sequential: the read for key i+1 starts only after the consumer has
//     finished with key i and asked for the next one.
//   - N > 1 keeps up to N-1 reads in flight while the consumer works through the current
//     object. Each key owns a single-slot result channel, so a fast read for key 5 waits in
//     its slot until keys 0..4 have been consumed.
//
// Breaking out of the returned sequence (or cancelling ctx) cancels every in-flight read and
// waits for the workers to exit before the sequence returns.
//
//go:generate mockgen -source=ordered_fetcher.go -destination=./mocks/ordered_fetcher_mock.go -package=mocks
type OrderedFetcher interface {
	Fetch(ctx context.Context, keys []string) iter.Seq[FetchResult]
}

type orderedFetcher struct {
	source      objectsources.ObjectSource
	concurrency int
}

func NewOrderedFetcher(source objectsources.ObjectSource, concurrency int) OrderedFetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &orderedFetcher{source: source, concurrency: concurrency}
}

func (fetcher *orderedFetcher) Fetch(ctx context.Context, keys []string) iter.Seq[FetchResult] {
	return func(yield func(FetchResult) bool) {
		if len(keys) == 0 {
			return
		}

		ctx, cancel := context.WithCancel(ctx)
		var wg sync.WaitGroup
		defer func() {
			cancel()
			wg.Wait()
		}()

		slots := make([]chan FetchResult, len(keys))
		for i := range slots {
			slots[i] = make(chan FetchResult, 1)
		}
		// A token is taken before a read starts and returned once the consumer is done with the result.
		tokens := make(chan struct{}, fetcher.concurrency)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, key := range keys {
				select {
				case tokens <- struct{}{}:
				case <-ctx.Done():
					return
				}
				wg.Add(1)
				go func() {
					defer wg.Done()
					data, err := fetcher.source.ReadObject(ctx, key)
					slots[i] <- FetchResult{Key: key, Data: data, Err: err}
				}()
			}
		}()

		for i, key := range keys {
			waitStart := time.Now()
			var result FetchResult
			select {
			case result = <-slots[i]:
			case <-ctx.Done():
				yield(FetchResult{Key: key, Err: ctx.Err()})
				return
			}
			metricFetchWaitSeconds.WithLabelValues().Observe(time.Since(waitStart).Seconds())

			if !yield(result) {
				return
			}
			<-tokens
		}
	}
}

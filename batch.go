package cndata

import (
	"context"

	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type FuncFetchOne[T any] func(ctx context.Context, key string) ([]T, *errs.Error)

/*
FetchBatch run fetch for every key and concatenate the results in key order.
Each key gets up to tryNum attempts. Structural failures stop retrying that key at once.
A key that never succeeds contributes nothing and the batch goes on.
concurrency > 1 runs keys in parallel with the same result.
*/
func FetchBatch[T any](ctx context.Context, keys []string, tryNum, concurrency int, fetch FuncFetchOne[T]) []T {
	if tryNum < 1 {
		tryNum = 1
	}
	if concurrency < 1 {
		concurrency = 1
	}
	parts := make([][]T, len(keys))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, key := range keys {
		g.Go(func() error {
			parts[i] = fetchWithTries(ctx, key, tryNum, fetch)
			return nil
		})
	}
	_ = g.Wait()
	var res []T
	failNum := 0
	for i, p := range parts {
		if p == nil {
			failNum += 1
			log.Ctx(ctx).Debug("batch item empty", zap.String("key", keys[i]))
		}
		res = append(res, p...)
	}
	if failNum > 0 {
		log.Ctx(ctx).Info("batch fetch done", zap.Int("keys", len(keys)), zap.Int("empty", failNum))
	}
	return res
}

func fetchWithTries[T any](ctx context.Context, key string, tryNum int, fetch FuncFetchOne[T]) []T {
	for i := 0; i < tryNum; i++ {
		if ctx.Err() != nil {
			return nil
		}
		items, err := fetch(ctx, key)
		if err == nil {
			if items == nil {
				items = []T{}
			}
			return items
		}
		if err.Structural() {
			log.Ctx(ctx).Warn("bad payload, skip", zap.String("key", key), zap.String("err", err.Short()))
			return nil
		}
		log.Ctx(ctx).Warn("fetch fail", zap.String("key", key), zap.Int("try", i+1), zap.String("err", err.Short()))
	}
	return nil
}

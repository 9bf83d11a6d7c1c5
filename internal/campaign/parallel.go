package campaign

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"typefuzz/internal/gen"
	"typefuzz/internal/solver"
)

// RunShards splits a campaign into independent shards run in parallel, one
// generator and one solver per worker (backends are not shared across
// goroutines). Shard k fuzzes with seed base+k, so a sharded run is
// reproducible but not draw-for-draw identical to the sequential one.
// Results come back ordered by shard, then by case index within the shard.
func RunShards(ctx context.Context, cfg Config, shards int, newSolver func() solver.Interface, sink ProgressSink) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if newSolver == nil {
		return nil, fmt.Errorf("invalid campaign config: nil solver constructor")
	}
	if shards <= 0 {
		shards = runtime.GOMAXPROCS(0)
	}
	if shards > cfg.Tests {
		shards = cfg.Tests
	}
	if shards == 1 {
		return Run(ctx, cfg, newSolver(), sink)
	}

	base := cfg.seed()
	perShard := cfg.Tests / shards
	extra := cfg.Tests % shards

	shardResults := make([][]Result, shards)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(shards)

	offset := 0
	for k := 0; k < shards; k++ {
		tests := perShard
		if k < extra {
			tests++
		}
		shardCfg := cfg
		shardCfg.Tests = tests
		shardCfg.Seed = base + int64(k)
		shardOffset := offset
		offset += tests

		g.Go(func(k int, shardCfg Config, shardOffset int) func() error {
			return func() error {
				shardGen := gen.New(gen.NewSource(shardCfg.Seed), shardCfg.options())
				res, err := run(gctx, shardCfg, shardGen, newSolver(), offsetSink{sink: sink, offset: shardOffset, total: cfg.Tests}, nil)
				if err != nil {
					return fmt.Errorf("shard %d: %w", k, err)
				}
				for i := range res {
					res[i].Index += shardOffset
				}
				shardResults[k] = res
				return nil
			}
		}(k, shardCfg, shardOffset))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, cfg.Tests)
	for _, res := range shardResults {
		results = append(results, res...)
	}
	return results, nil
}

// offsetSink rebases per-shard event indices onto the whole campaign.
type offsetSink struct {
	sink   ProgressSink
	offset int
	total  int
}

func (s offsetSink) OnEvent(evt Event) {
	if s.sink == nil {
		return
	}
	evt.Index += s.offset
	evt.Total = s.total
	s.sink.OnEvent(evt)
}

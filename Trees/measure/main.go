package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/g-m-twostay/go-avl/Trees"
	"go.uber.org/zap"
)

var __r1 bool

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// workloads returns the benchmarks run for one contender: filling it with ks, querying it, and
// emptying it again.
func workloads(c contender, ks []int, queries uint32) map[string]func(b *testing.B) {
	fill := func() container {
		m := c.make(len(ks))
		for _, k := range ks {
			m.insert(k)
		}
		return m
	}
	ws := map[string]func(b *testing.B){
		"query": func(b *testing.B) {
			m := fill()
			b.ResetTimer()
			for range b.N {
				for i := range queries {
					__r1 = m.has(ks[int(i)%len(ks)] + int(i&1))
				}
			}
		},
	}
	if c.ordered {
		ws["insert"] = func(b *testing.B) {
			for range b.N {
				fill()
			}
		}
		ws["remove"] = func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				m := fill()
				b.StartTimer()
				for _, k := range ks {
					m.remove(k)
				}
			}
		}
	}
	return ws
}

// verify builds the tree for ks once and checks its structure before any timing is trusted.
func verify(logger *zap.Logger, ks []int) error {
	t := Trees.NewOrdered[int, uint32](Trees.WithHint(uint64(len(ks))), Trees.WithLogger(logger))
	for _, k := range ks {
		t.Insert(k)
	}
	if err := t.Check(); err != nil {
		return err
	}
	logger.Info("avl built", zap.Uint("size", t.Size()), zap.Int("height", t.Height()))
	for i, k := range ks {
		if i&1 == 0 {
			t.Remove(k)
		}
	}
	if err := t.Check(); err != nil {
		return err
	}
	logger.Info("avl half removed", zap.Uint("size", t.Size()), zap.Int("height", t.Height()))
	return nil
}

func run(logger *zap.Logger, cfg *Config) error {
	ks := keys(cfg, int(cfg.N))
	if err := verify(logger, ks); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	for _, c := range contenders {
		if cfg.Only != "" && cfg.Only != c.name {
			continue
		}
		for op, w := range workloads(c, ks, cfg.Queries) {
			br := testing.Benchmark(w)
			if br.N == 0 {
				return fmt.Errorf("%s %s: benchmark failed", c.name, op)
			}
			items := int64(len(ks))
			if op == "query" {
				items = int64(cfg.Queries)
			}
			logger.Info("measured",
				zap.String("container", c.name),
				zap.String("op", op),
				zap.String("keys", string(cfg.Keys)),
				zap.Int("runs", br.N),
				zap.Float64("ns_per_item", float64(br.NsPerOp())/float64(max(items, 1))),
				zap.Int64("allocs_per_run", br.AllocsPerOp()),
			)
		}
	}
	return nil
}

func main() {
	testing.Init()
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()
	if err := run(logger, cfg); err != nil {
		logger.Fatal("measure failed", zap.Error(err))
	}
}

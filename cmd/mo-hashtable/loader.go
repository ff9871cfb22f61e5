// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
	"github.com/matrixorigin/chainhash/pkg/container/hashtable"
	"github.com/matrixorigin/chainhash/pkg/logutil"
)

type loader[K hashtable.Hashable] struct {
	capacity int
	workers  int
	parse    keyParser[K]
}

// Load reads every source into a table of its own on a worker pool, then
// merges the tables with a single UnionAll. Keys found in several sources
// are kept once per occurrence.
func (l *loader[K]) Load(ctx context.Context, sources []PairSource) (*hashtable.ChainedHashMap[K, string], error) {
	pool, err := ants.NewPool(l.workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	tables := make([]*hashtable.ChainedHashMap[K, string], len(sources))
	errs := make([]error, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		i, src := i, src
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			tables[i], errs[i] = l.loadOne(ctx, src)
		}); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()
	if err != nil {
		return nil, err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return hashtable.UnionAll(tables...), nil
}

func (l *loader[K]) loadOne(ctx context.Context, src PairSource) (tbl *hashtable.ChainedHashMap[K, string], err error) {
	defer func() {
		if r := recover(); r != nil {
			tbl, err = nil, moerr.ConvertPanicError(ctx, r)
		}
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := src.ReadPairs()
	if err != nil {
		return nil, moerr.ConvertGoError(ctx, err)
	}
	if len(raw) == 0 {
		logutil.Warn("source has no pairs", zap.String("source", src.Name()))
	}
	tbl = hashtable.NewWithCapacity[K, string](l.capacity)
	for i, p := range raw {
		key, err := l.parse(p.Key)
		if err != nil {
			return nil, moerr.NewInvalidInputNoCtx("%s pair %d: %v", src.Name(), i, err)
		}
		tbl.Emplace(key, p.Value)
	}
	logutil.Debug("source loaded",
		zap.String("source", src.Name()),
		zap.Int("pairs", tbl.Size()),
		zap.Int("buckets", tbl.BucketCount()))
	return tbl, nil
}

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

package hashtable

import (
	"math"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/exp/slices"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
)

// Equal reports whether a and b hold the same multiset of pairs,
// regardless of bucket count or chain order. A table is always equal to
// itself; between distinct tables a pair with a NaN key never matches.
func Equal[K Hashable, V comparable](a, b *ChainedHashMap[K, V]) bool {
	if a == b {
		return true
	}
	if a.Size() != b.Size() {
		return false
	}
	pa, pb := a.Pairs(), b.Pairs()
	if slices.Equal(pa, pb) {
		return true
	}
	counts := make(map[Pair[K, V]]int, len(pa))
	for _, p := range pa {
		counts[p]++
	}
	for _, p := range pb {
		if counts[p] == 0 {
			return false
		}
		counts[p]--
	}
	return true
}

func NotEqual[K Hashable, V comparable](a, b *ChainedHashMap[K, V]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal for values that are not comparable with ==.
// eq must be an equivalence relation.
func EqualFunc[K Hashable, V1, V2 any](a *ChainedHashMap[K, V1], b *ChainedHashMap[K, V2], eq func(V1, V2) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	match := func(x Pair[K, V1], y Pair[K, V2]) bool {
		return x.Key == y.Key && eq(x.Value, y.Value)
	}
	pa, pb := a.Pairs(), b.Pairs()
	if slices.EqualFunc(pa, pb, match) {
		return true
	}
	if uint64(len(pb)) > math.MaxUint32 {
		panic(moerr.NewNotSupportedNoCtx("comparing tables of %d pairs", len(pb)))
	}
	used := roaring.New()
	for _, x := range pa {
		found := false
		for j, y := range pb {
			if used.Contains(uint32(j)) || !match(x, y) {
				continue
			}
			used.Add(uint32(j))
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

// Less orders tables by size only.
func Less[K Hashable, V any](a, b *ChainedHashMap[K, V]) bool {
	return a.Size() < b.Size()
}

func Greater[K Hashable, V any](a, b *ChainedHashMap[K, V]) bool {
	return a.Size() > b.Size()
}

// LessEqual is Equal or Less. Two tables of the same size with different
// contents are neither LessEqual nor GreaterEqual.
func LessEqual[K Hashable, V comparable](a, b *ChainedHashMap[K, V]) bool {
	return Equal(a, b) || Less(a, b)
}

func GreaterEqual[K Hashable, V comparable](a, b *ChainedHashMap[K, V]) bool {
	return Equal(a, b) || Greater(a, b)
}

// UnionAll returns a new table whose bucket count is the sum of the bucket
// counts of tables, holding every pair of every table. Keys present in
// several tables appear once per occurrence.
func UnionAll[K Hashable, V any](tables ...*ChainedHashMap[K, V]) *ChainedHashMap[K, V] {
	bucketCnt := 0
	for _, t := range tables {
		if t.bucketCnt > math.MaxInt-bucketCnt {
			panic(moerr.NewOutOfRangeNoCtx("bucket count", "%d + %d overflows", bucketCnt, t.bucketCnt))
		}
		bucketCnt += t.bucketCnt
	}
	result := NewWithCapacity[K, V](bucketCnt)
	push := func(key K, value V) bool {
		result.pushFront(Pair[K, V]{Key: key, Value: value})
		return true
	}
	for _, t := range tables {
		t.Range(push)
	}
	return result
}

// Union is UnionAll of ht and rhs.
func (ht *ChainedHashMap[K, V]) Union(rhs *ChainedHashMap[K, V]) *ChainedHashMap[K, V] {
	return UnionAll(ht, rhs)
}

// UnionWith replaces ht with ht.Union(rhs).
func (ht *ChainedHashMap[K, V]) UnionWith(rhs *ChainedHashMap[K, V]) {
	ht.MoveFrom(ht.Union(rhs))
}

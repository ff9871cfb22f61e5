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

	"go.uber.org/zap"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
	"github.com/matrixorigin/chainhash/pkg/logutil"
)

// New returns an empty table with zero buckets. The first insertion
// grows it to DefaultGrowCapacity.
func New[K Hashable, V any]() *ChainedHashMap[K, V] {
	ht := &ChainedHashMap[K, V]{}
	ht.Init()
	return ht
}

// NewWithCapacity returns an empty table with capacity buckets.
func NewWithCapacity[K Hashable, V any](capacity int) *ChainedHashMap[K, V] {
	if capacity < 0 {
		panic(moerr.NewInvalidArgNoCtx("capacity", capacity))
	}
	ht := New[K, V]()
	if capacity > 0 {
		ht.bucketCnt = capacity
		ht.bucketData = make([]*chainedCell[K, V], capacity)
	}
	return ht
}

// NewFromPairs builds a table with exactly len(pairs) buckets holding
// every pair, duplicates included.
func NewFromPairs[K Hashable, V any](pairs ...Pair[K, V]) *ChainedHashMap[K, V] {
	ht := NewWithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		ht.pushFront(p)
	}
	return ht
}

func (ht *ChainedHashMap[K, V]) Init() {
	ht.bucketCnt = 0
	ht.elemCnt = 0
	ht.bucketData = nil
	ht.hashFn = hashFuncOf[K]()
}

func (ht *ChainedHashMap[K, V]) hash(key K) int {
	if ht.bucketCnt == 0 {
		panic(moerr.NewDivByZeroNoCtx())
	}
	if ht.hashFn == nil {
		ht.hashFn = hashFuncOf[K]()
	}
	return int(ht.hashFn(key, uint64(ht.bucketCnt)))
}

func (ht *ChainedHashMap[K, V]) pushFront(p Pair[K, V]) *chainedCell[K, V] {
	idx := ht.hash(p.Key)
	cell := &chainedCell[K, V]{Pair: p, next: ht.bucketData[idx]}
	ht.bucketData[idx] = cell
	ht.elemCnt++
	return cell
}

func (ht *ChainedHashMap[K, V]) findCell(key K) *chainedCell[K, V] {
	if ht.bucketCnt == 0 {
		return nil
	}
	for cell := ht.bucketData[ht.hash(key)]; cell != nil; cell = cell.next {
		if cell.Key == key {
			return cell
		}
	}
	return nil
}

func (ht *ChainedHashMap[K, V]) growCapacity() int {
	if ht.bucketCnt == 0 {
		return DefaultGrowCapacity
	}
	if ht.bucketCnt > math.MaxInt/2 {
		panic(moerr.NewOutOfRangeNoCtx("bucket count", "doubling %d overflows", ht.bucketCnt))
	}
	return ht.bucketCnt * 2
}

// Insert adds p even if its key is already present. The table doubles
// its bucket count first once it holds as many pairs as buckets.
func (ht *ChainedHashMap[K, V]) Insert(p Pair[K, V]) {
	if ht.elemCnt >= ht.bucketCnt {
		ht.Rehash(ht.growCapacity())
	}
	ht.pushFront(p)
}

func (ht *ChainedHashMap[K, V]) Emplace(key K, value V) {
	ht.Insert(Pair[K, V]{Key: key, Value: value})
}

// AtOrCreate returns the value of the most recently inserted pair with
// key, adding a zero-valued pair when there is none. It only grows an
// empty zero-capacity table, so the load factor may exceed one.
// The pointer stays valid until the pair is erased.
func (ht *ChainedHashMap[K, V]) AtOrCreate(key K) *V {
	if ht.bucketCnt == 0 {
		ht.Rehash(DefaultGrowCapacity)
	}
	if cell := ht.findCell(key); cell != nil {
		return &cell.Value
	}
	return &ht.pushFront(Pair[K, V]{Key: key}).Value
}

func (ht *ChainedHashMap[K, V]) Contains(key K) bool {
	return ht.findCell(key) != nil
}

// Get returns the value AtOrCreate would return, without creating it.
func (ht *ChainedHashMap[K, V]) Get(key K) (V, bool) {
	if cell := ht.findCell(key); cell != nil {
		return cell.Value, true
	}
	var zero V
	return zero, false
}

func (ht *ChainedHashMap[K, V]) Find(key K) (Pair[K, V], bool) {
	if cell := ht.findCell(key); cell != nil {
		return cell.Pair, true
	}
	return Pair[K, V]{}, false
}

// Count returns how many pairs carry key.
func (ht *ChainedHashMap[K, V]) Count(key K) int {
	if ht.bucketCnt == 0 {
		return 0
	}
	n := 0
	for cell := ht.bucketData[ht.hash(key)]; cell != nil; cell = cell.next {
		if cell.Key == key {
			n++
		}
	}
	return n
}

// Erase removes every pair carrying key and returns how many went.
func (ht *ChainedHashMap[K, V]) Erase(key K) int {
	if ht.bucketCnt == 0 {
		return 0
	}
	removed := 0
	link := &ht.bucketData[ht.hash(key)]
	for *link != nil {
		if (*link).Key == key {
			*link = (*link).next
			removed++
			continue
		}
		link = &(*link).next
	}
	ht.elemCnt -= removed
	return removed
}

// Extract removes the most recently inserted pair carrying key.
func (ht *ChainedHashMap[K, V]) Extract(key K) (Pair[K, V], bool) {
	if ht.bucketCnt == 0 {
		return Pair[K, V]{}, false
	}
	for link := &ht.bucketData[ht.hash(key)]; *link != nil; link = &(*link).next {
		if cell := *link; cell.Key == key {
			*link = cell.next
			ht.elemCnt--
			return cell.Pair, true
		}
	}
	return Pair[K, V]{}, false
}

// Rehash redistributes every pair over bucketCnt buckets. Cells are
// relinked rather than copied. Rehash(0) clears an empty table and
// panics on a non-empty one.
func (ht *ChainedHashMap[K, V]) Rehash(bucketCnt int) {
	if bucketCnt < 0 || (bucketCnt == 0 && ht.elemCnt > 0) {
		panic(moerr.NewInvalidArgNoCtx("bucket count", bucketCnt))
	}
	if bucketCnt == 0 {
		ht.Clear()
		return
	}
	logutil.Debug("hash table rehash",
		zap.Int("from", ht.bucketCnt),
		zap.Int("to", bucketCnt),
		zap.Int("count", ht.elemCnt))

	oldData := ht.bucketData
	ht.bucketCnt = bucketCnt
	ht.bucketData = make([]*chainedCell[K, V], bucketCnt)
	for _, head := range oldData {
		for cell := head; cell != nil; {
			next := cell.next
			idx := ht.hash(cell.Key)
			cell.next = ht.bucketData[idx]
			ht.bucketData[idx] = cell
			cell = next
		}
	}
}

// Clear drops every pair and every bucket.
func (ht *ChainedHashMap[K, V]) Clear() {
	ht.bucketCnt = 0
	ht.elemCnt = 0
	ht.bucketData = nil
}

// Empty reports whether no bucket holds a pair.
func (ht *ChainedHashMap[K, V]) Empty() bool {
	return ht.bucketCnt == 0 || ht.elemCnt == 0
}

func (ht *ChainedHashMap[K, V]) Size() int {
	return ht.elemCnt
}

func (ht *ChainedHashMap[K, V]) BucketCount() int {
	return ht.bucketCnt
}

func (ht *ChainedHashMap[K, V]) BucketSize(i int) int {
	if i < 0 || i >= ht.bucketCnt {
		panic(moerr.NewOutOfRangeNoCtx("bucket", "index %d, bucket count %d", i, ht.bucketCnt))
	}
	n := 0
	for cell := ht.bucketData[i]; cell != nil; cell = cell.next {
		n++
	}
	return n
}

// LoadFactor is Size over BucketCount, zero for a table without buckets.
func (ht *ChainedHashMap[K, V]) LoadFactor() float64 {
	if ht.bucketCnt == 0 {
		return 0
	}
	return float64(ht.elemCnt) / float64(ht.bucketCnt)
}

// Clone copies the table bucket by bucket, keeping the order inside each
// chain. Values are copied by assignment.
func (ht *ChainedHashMap[K, V]) Clone() *ChainedHashMap[K, V] {
	cp := &ChainedHashMap[K, V]{
		bucketCnt: ht.bucketCnt,
		elemCnt:   ht.elemCnt,
		hashFn:    ht.hashFn,
	}
	if ht.bucketData != nil {
		cp.bucketData = make([]*chainedCell[K, V], len(ht.bucketData))
		for i, head := range ht.bucketData {
			tail := &cp.bucketData[i]
			for cell := head; cell != nil; cell = cell.next {
				*tail = &chainedCell[K, V]{Pair: cell.Pair}
				tail = &(*tail).next
			}
		}
	}
	return cp
}

// MoveFrom takes over the contents of other and leaves it empty with
// zero buckets.
func (ht *ChainedHashMap[K, V]) MoveFrom(other *ChainedHashMap[K, V]) {
	if other == ht {
		return
	}
	ht.bucketCnt, ht.elemCnt, ht.bucketData = other.bucketCnt, other.elemCnt, other.bucketData
	if ht.hashFn == nil {
		ht.hashFn = other.hashFn
	}
	other.Clear()
}

func (ht *ChainedHashMap[K, V]) Swap(other *ChainedHashMap[K, V]) {
	*ht, *other = *other, *ht
}

// Merge moves every pair of other into ht through Insert and leaves
// other empty with zero buckets.
func (ht *ChainedHashMap[K, V]) Merge(other *ChainedHashMap[K, V]) {
	if other == ht {
		return
	}
	pairs := other.Pairs()
	other.Clear()
	for _, p := range pairs {
		ht.Insert(p)
	}
}

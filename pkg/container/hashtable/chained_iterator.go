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
	"fmt"
	"strings"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
)

func (ht *ChainedHashMap[K, V]) NewIterator() *ChainedHashMapIterator[K, V] {
	it := &ChainedHashMapIterator[K, V]{}
	it.Init(ht)
	return it
}

func (it *ChainedHashMapIterator[K, V]) Init(ht *ChainedHashMap[K, V]) {
	it.table = ht
	it.pos = 0
	it.cell = nil
}

// Next walks the buckets in index order and each chain front to back.
// It returns moerr.GetOkExpectedEOF once every pair has been visited.
// The table must not be modified between calls, except through the
// returned pointer's Value.
func (it *ChainedHashMapIterator[K, V]) Next() (*Pair[K, V], error) {
	if it.cell != nil {
		it.cell = it.cell.next
	}
	for it.cell == nil {
		if it.pos >= it.table.bucketCnt {
			return nil, moerr.GetOkExpectedEOF()
		}
		it.cell = it.table.bucketData[it.pos]
		it.pos++
	}
	return &it.cell.Pair, nil
}

// Range calls fn for every pair in iteration order until fn returns false.
func (ht *ChainedHashMap[K, V]) Range(fn func(key K, value V) bool) {
	for _, head := range ht.bucketData {
		for cell := head; cell != nil; cell = cell.next {
			if !fn(cell.Key, cell.Value) {
				return
			}
		}
	}
}

func (ht *ChainedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, ht.elemCnt)
	ht.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (ht *ChainedHashMap[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, ht.elemCnt)
	ht.Range(func(key K, value V) bool {
		pairs = append(pairs, Pair[K, V]{Key: key, Value: value})
		return true
	})
	return pairs
}

// String renders the pairs in iteration order as {k1: v1, k2: v2}.
func (ht *ChainedHashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	ht.Range(func(key K, value V) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", key, value)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

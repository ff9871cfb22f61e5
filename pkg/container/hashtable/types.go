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

import "golang.org/x/exp/constraints"

// DefaultGrowCapacity is the bucket count a zero-capacity table grows to
// on its first insertion, since doubling zero buckets yields zero.
var DefaultGrowCapacity = 8

// Hashable is the set of key types with a fixed bucket mapping:
// integers and characters use their value, floats their integer part and
// strings the sum of their bytes.
type Hashable interface {
	constraints.Integer | constraints.Float | ~string
}

type Pair[K Hashable, V any] struct {
	Key   K
	Value V
}

type chainedCell[K Hashable, V any] struct {
	Pair[K, V]
	next *chainedCell[K, V]
}

// ChainedHashMap is a hash table with separate chaining. Bucket i holds,
// most recent first, every pair whose key maps to i.
//
// A ChainedHashMap is not safe for concurrent use.
type ChainedHashMap[K Hashable, V any] struct {
	bucketCnt  int
	elemCnt    int
	bucketData []*chainedCell[K, V]
	hashFn     hashFunc[K]
}

type ChainedHashMapIterator[K Hashable, V any] struct {
	table *ChainedHashMap[K, V]
	pos   int
	cell  *chainedCell[K, V]
}

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
	"fmt"
	"io"

	hll "github.com/axiomhq/hyperloglog"
	"github.com/google/btree"

	"github.com/matrixorigin/chainhash/pkg/container/hashtable"
)

// writeSummary prints the shape of ht. The union keeps duplicates, so the
// number of distinct keys is estimated separately.
func writeSummary[K hashtable.Hashable](w io.Writer, ht *hashtable.ChainedHashMap[K, string]) error {
	sketch := hll.New()
	ht.Range(func(key K, _ string) bool {
		sketch.Insert([]byte(fmt.Sprint(key)))
		return true
	})
	_, err := fmt.Fprintf(w, "pairs: %d\nbuckets: %d\nload factor: %.2f\ndistinct keys (estimated): %d\n",
		ht.Size(), ht.BucketCount(), ht.LoadFactor(), sketch.Estimate())
	return err
}

type sortedPair[K hashtable.Hashable] struct {
	hashtable.Pair[K, string]
	seq int
}

func lessKey[K hashtable.Hashable](a, b K) bool {
	// NaN sorts first.
	if a != a {
		return b == b
	}
	return a < b
}

func (p sortedPair[K]) Less(than btree.Item) bool {
	o := than.(sortedPair[K])
	if lessKey(p.Key, o.Key) {
		return true
	}
	if lessKey(o.Key, p.Key) {
		return false
	}
	return p.seq < o.seq
}

// writeSorted prints one "key<TAB>value" line per pair, ordered by key and
// then by iteration order.
func writeSorted[K hashtable.Hashable](w io.Writer, ht *hashtable.ChainedHashMap[K, string]) error {
	tree := btree.New(32)
	seq := 0
	ht.Range(func(key K, value string) bool {
		tree.ReplaceOrInsert(sortedPair[K]{Pair: hashtable.Pair[K, string]{Key: key, Value: value}, seq: seq})
		seq++
		return true
	})
	var err error
	tree.Ascend(func(item btree.Item) bool {
		p := item.(sortedPair[K])
		_, err = fmt.Fprintf(w, "%v\t%s\n", p.Key, p.Value)
		return err == nil
	})
	return err
}

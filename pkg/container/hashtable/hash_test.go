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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
)

func requirePanicCode(t *testing.T, code uint16, fn func()) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*moerr.Error)
		require.True(t, ok, "unexpected panic value %v", r)
		require.Equal(t, code, err.ErrorCode())
	}()
	fn()
}

func TestSignedIndex(t *testing.T) {
	cases := []struct {
		key  int64
		n    uint64
		want uint64
	}{
		{0, 8, 0},
		{17, 8, 1},
		{-1, 8, 7},
		{-8, 8, 0},
		{-9, 8, 7},
		{math.MinInt64, 8, 0},
		{math.MaxInt64, 10, 7},
		{-1, math.MaxUint64, math.MaxUint64 - 1},
		{5, math.MaxUint64, 5},
	}
	for _, c := range cases {
		require.Equal(t, c.want, SignedIndex(c.key, c.n), "key %d, n %d", c.key, c.n)
	}
}

func TestUnsignedIndex(t *testing.T) {
	require.Equal(t, uint64(3), UnsignedIndex(11, 8))
	require.Equal(t, uint64(5), UnsignedIndex(math.MaxUint64, 10))
}

func TestFloatIndex(t *testing.T) {
	cases := []struct {
		key  float64
		n    uint64
		want uint64
	}{
		{3.7, 4, 3},
		{9.99, 5, 4},
		{-0.5, 4, 0},
		{-1.5, 4, 3},
		{math.NaN(), 4, 0},
		{math.Inf(1), 4, 0},
		{math.Inf(-1), 4, 0},
		{1e300, 7, uint64(math.Mod(1e300, 7))},
	}
	for _, c := range cases {
		require.Equal(t, c.want, FloatIndex(c.key, c.n), "key %v, n %d", c.key, c.n)
	}
}

func TestStringIndex(t *testing.T) {
	require.Equal(t, uint64(0), StringIndex("", 10))
	require.Equal(t, uint64(5), StringIndex("ab", 10))
	require.Equal(t, StringIndex("ab", 10), StringIndex("ba", 10))
	require.Equal(t, uint64(0xff+1)%7, StringIndex("\xff\x01", 7))
}

func TestIndexZeroBuckets(t *testing.T) {
	requirePanicCode(t, moerr.ErrDivByZero, func() { SignedIndex(1, 0) })
	requirePanicCode(t, moerr.ErrDivByZero, func() { UnsignedIndex(1, 0) })
	requirePanicCode(t, moerr.ErrDivByZero, func() { FloatIndex(1, 0) })
	requirePanicCode(t, moerr.ErrDivByZero, func() { StringIndex("a", 0) })
}

type tableName string
type smallInt int8

func TestHashFuncOf(t *testing.T) {
	require.Equal(t, uint64(5), hashFuncOf[tableName]()("ab", 10))
	require.Equal(t, uint64(7), hashFuncOf[smallInt]()(-1, 8))
	require.Equal(t, uint64(7), hashFuncOf[int32]()(-1, 8))
	require.Equal(t, uint64(2), hashFuncOf[uint16]()(10, 8))
	require.Equal(t, uint64(3), hashFuncOf[float32]()(-1.25, 4))
	require.Equal(t, uint64(65%8), hashFuncOf[byte]()('A', 8))
	require.Equal(t, uint64(0x4e2d%16), hashFuncOf[rune]()('中', 16))
}

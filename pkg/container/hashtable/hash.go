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
	"reflect"
	"unsafe"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
)

// hashFunc maps a key to a bucket index in [0, bucketCnt).
type hashFunc[K Hashable] func(key K, bucketCnt uint64) uint64

// hashFuncOf picks the bucket mapping for the underlying kind of K.
func hashFuncOf[K Hashable]() hashFunc[K] {
	var zero K
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int:
		return func(key K, n uint64) uint64 { return SignedIndex(int64(*(*int)(unsafe.Pointer(&key))), n) }
	case reflect.Int8:
		return func(key K, n uint64) uint64 { return SignedIndex(int64(*(*int8)(unsafe.Pointer(&key))), n) }
	case reflect.Int16:
		return func(key K, n uint64) uint64 { return SignedIndex(int64(*(*int16)(unsafe.Pointer(&key))), n) }
	case reflect.Int32:
		return func(key K, n uint64) uint64 { return SignedIndex(int64(*(*int32)(unsafe.Pointer(&key))), n) }
	case reflect.Int64:
		return func(key K, n uint64) uint64 { return SignedIndex(*(*int64)(unsafe.Pointer(&key)), n) }
	case reflect.Uint:
		return func(key K, n uint64) uint64 { return UnsignedIndex(uint64(*(*uint)(unsafe.Pointer(&key))), n) }
	case reflect.Uint8:
		return func(key K, n uint64) uint64 { return UnsignedIndex(uint64(*(*uint8)(unsafe.Pointer(&key))), n) }
	case reflect.Uint16:
		return func(key K, n uint64) uint64 { return UnsignedIndex(uint64(*(*uint16)(unsafe.Pointer(&key))), n) }
	case reflect.Uint32:
		return func(key K, n uint64) uint64 { return UnsignedIndex(uint64(*(*uint32)(unsafe.Pointer(&key))), n) }
	case reflect.Uint64:
		return func(key K, n uint64) uint64 { return UnsignedIndex(*(*uint64)(unsafe.Pointer(&key)), n) }
	case reflect.Uintptr:
		return func(key K, n uint64) uint64 { return UnsignedIndex(uint64(*(*uintptr)(unsafe.Pointer(&key))), n) }
	case reflect.Float32:
		return func(key K, n uint64) uint64 { return FloatIndex(float64(*(*float32)(unsafe.Pointer(&key))), n) }
	case reflect.Float64:
		return func(key K, n uint64) uint64 { return FloatIndex(*(*float64)(unsafe.Pointer(&key)), n) }
	case reflect.String:
		return func(key K, n uint64) uint64 { return StringIndex(*(*string)(unsafe.Pointer(&key)), n) }
	}
	panic(moerr.NewNotSupportedNoCtx("hash key of type %T", zero))
}

// SignedIndex takes Go's truncated remainder and folds a negative
// result back into [0, n), so -1 lands in bucket n-1.
func SignedIndex(key int64, n uint64) uint64 {
	if n == 0 {
		panic(moerr.NewDivByZeroNoCtx())
	}
	if n > math.MaxInt64 {
		if key >= 0 {
			return uint64(key)
		}
		return n - uint64(-(key + 1)) - 1
	}
	r := key % int64(n)
	if r < 0 {
		r += int64(n)
	}
	return uint64(r)
}

func UnsignedIndex(key uint64, n uint64) uint64 {
	if n == 0 {
		panic(moerr.NewDivByZeroNoCtx())
	}
	return key % n
}

// FloatIndex truncates key toward zero and maps the integer part like
// SignedIndex. NaN and infinities have no integer part and use bucket 0.
func FloatIndex(key float64, n uint64) uint64 {
	if n == 0 {
		panic(moerr.NewDivByZeroNoCtx())
	}
	if math.IsNaN(key) || math.IsInf(key, 0) {
		return 0
	}
	r := math.Mod(math.Trunc(key), float64(n))
	if r < 0 {
		r += float64(n)
	}
	idx := uint64(r)
	if idx >= n {
		idx %= n
	}
	return idx
}

// StringIndex sums the bytes of key. Strings that are permutations of
// each other always collide.
func StringIndex(key string, n uint64) uint64 {
	if n == 0 {
		panic(moerr.NewDivByZeroNoCtx())
	}
	var sum uint64
	for i := 0; i < len(key); i++ {
		sum += uint64(key[i])
	}
	return sum % n
}

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
	"strconv"
	"strings"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
	"github.com/matrixorigin/chainhash/pkg/container/hashtable"
)

type keyParser[K hashtable.Hashable] func(string) (K, error)

func parseIntKey(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, moerr.NewInvalidInputNoCtx("int key %q", s)
	}
	return v, nil
}

func parseUintKey(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, moerr.NewInvalidInputNoCtx("uint key %q", s)
	}
	return v, nil
}

func parseFloatKey(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, moerr.NewInvalidInputNoCtx("float key %q", s)
	}
	return v, nil
}

func parseStringKey(s string) (string, error) {
	return s, nil
}

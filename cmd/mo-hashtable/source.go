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
	"errors"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
)

// RawPair is a pair as written in a data file, before its key is parsed.
type RawPair struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// PairSource yields the pairs of one input.
type PairSource interface {
	Name() string
	ReadPairs() ([]RawPair, error)
}

// fileSource reads a TOML document made of [[pair]] tables.
type fileSource struct {
	path string
}

func newFileSource(path string) *fileSource {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) ReadPairs() ([]RawPair, error) {
	var doc struct {
		Pair []RawPair `toml:"pair"`
	}
	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, moerr.NewFileNotFound(moerr.Context(), s.path)
		}
		return nil, moerr.NewParseErrorNoCtx("%s: %v", s.path, err)
	}
	return doc.Pair, nil
}

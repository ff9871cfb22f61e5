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
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
)

func newMockSource(ctrl *gomock.Controller, name string, pairs []RawPair, err error) *MockPairSource {
	src := NewMockPairSource(ctrl)
	src.EXPECT().Name().Return(name).AnyTimes()
	src.EXPECT().ReadPairs().Return(pairs, err).Times(1)
	return src
}

func TestLoader_Load(t *testing.T) {
	defer leaktest.AfterTest(t)()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newMockSource(ctrl, "a", []RawPair{{Key: "1", Value: "a"}, {Key: "2", Value: "b"}}, nil)
	b := newMockSource(ctrl, "b", []RawPair{{Key: "2", Value: "c"}, {Key: " -3 ", Value: "d"}}, nil)

	l := &loader[int64]{capacity: 4, workers: 2, parse: parseIntKey}
	merged, err := l.Load(context.Background(), []PairSource{a, b})
	require.NoError(t, err)
	require.Equal(t, 8, merged.BucketCount())
	require.Equal(t, 4, merged.Size())
	require.Equal(t, 2, merged.Count(2))
	v, ok := merged.Get(-3)
	require.True(t, ok)
	require.Equal(t, "d", v)
}

func TestLoader_LoadNoSources(t *testing.T) {
	defer leaktest.AfterTest(t)()
	l := &loader[string]{capacity: 4, workers: 1, parse: parseStringKey}
	merged, err := l.Load(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, merged.Empty())
	require.Equal(t, 0, merged.BucketCount())
}

func TestLoader_LoadEmptySource(t *testing.T) {
	defer leaktest.AfterTest(t)()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empty := newMockSource(ctrl, "empty", nil, nil)
	one := newMockSource(ctrl, "one", []RawPair{{Key: "k", Value: "v"}}, nil)
	l := &loader[string]{capacity: 3, workers: 2, parse: parseStringKey}
	merged, err := l.Load(context.Background(), []PairSource{empty, one})
	require.NoError(t, err)
	require.Equal(t, 1, merged.Size())
	require.Equal(t, 6, merged.BucketCount())
}

func TestLoader_LoadManySources(t *testing.T) {
	defer leaktest.AfterTest(t)()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var sources []PairSource
	for i := 0; i < 16; i++ {
		sources = append(sources, newMockSource(ctrl, "s", []RawPair{{Key: "7", Value: "x"}}, nil))
	}
	l := &loader[uint64]{capacity: 2, workers: 4, parse: parseUintKey}
	merged, err := l.Load(context.Background(), sources)
	require.NoError(t, err)
	require.Equal(t, 32, merged.BucketCount())
	require.Equal(t, 16, merged.Count(7))
}

func TestLoader_LoadErrors(t *testing.T) {
	defer leaktest.AfterTest(t)()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := &loader[int64]{capacity: 4, workers: 2, parse: parseIntKey}

	good := newMockSource(ctrl, "good", []RawPair{{Key: "1", Value: "a"}}, nil)
	missing := newMockSource(ctrl, "missing", nil, moerr.NewFileNotFound(context.Background(), "missing"))
	_, err := l.Load(context.Background(), []PairSource{good, missing})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrFileNotFound))

	badKey := newMockSource(ctrl, "bad", []RawPair{{Key: "x", Value: "a"}}, nil)
	_, err = l.Load(context.Background(), []PairSource{badKey})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	truncated := newMockSource(ctrl, "truncated", nil, io.ErrUnexpectedEOF)
	_, err = l.Load(context.Background(), []PairSource{truncated})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnexpectedEOF))

	broken := newMockSource(ctrl, "broken", nil, errors.New("disk on fire"))
	_, err = l.Load(context.Background(), []PairSource{broken})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))

	panicky := NewMockPairSource(ctrl)
	panicky.EXPECT().Name().Return("panicky").AnyTimes()
	panicky.EXPECT().ReadPairs().DoAndReturn(func() ([]RawPair, error) {
		panic("boom")
	})
	_, err = l.Load(context.Background(), []PairSource{panicky})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	idle := NewMockPairSource(ctrl)
	idle.EXPECT().Name().Return("idle").AnyTimes()
	_, err = l.Load(ctx, []PairSource{idle})
	require.ErrorIs(t, err, context.Canceled)
}

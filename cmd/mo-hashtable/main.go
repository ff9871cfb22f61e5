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
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
	"github.com/matrixorigin/chainhash/pkg/config"
	"github.com/matrixorigin/chainhash/pkg/container/hashtable"
	"github.com/matrixorigin/chainhash/pkg/logutil"
)

var (
	configFile = flag.String("cfg", "", "toml configuration used by mo-hashtable, defaults apply when empty")
	dump       = flag.Bool("dump", false, "print the merged pairs ordered by key")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-cfg file] [-dump] data.toml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := parseConfig(*configFile)
	if err != nil {
		panic(fmt.Sprintf("failed to parse config from %s, error: %s", *configFile, err.Error()))
	}
	setupLogger(cfg)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	sources := make([]PairSource, 0, flag.NArg())
	for _, path := range flag.Args() {
		sources = append(sources, newFileSource(path))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()
	if err := run(ctx, cfg, sources, *dump, os.Stdout); err != nil {
		logutil.Fatal("mo-hashtable failed", zap.Error(err))
	}
}

func parseConfig(path string) (*config.Config, error) {
	if len(path) == 0 {
		return config.ParseFromString("")
	}
	return config.ParseFromFile(path)
}

func setupLogger(cfg *config.Config) {
	logutil.SetupMOLogger(&cfg.Log)
	logutil.Info("config loaded",
		zap.String("key-type", cfg.HashTable.KeyType),
		zap.Int("initial-capacity", cfg.HashTable.InitialCapacity),
		zap.Int("workers", cfg.HashTable.Workers))
}

func run(ctx context.Context, cfg *config.Config, sources []PairSource, dump bool, w io.Writer) error {
	switch cfg.HashTable.KeyType {
	case config.KeyTypeInt:
		return runWithKey[int64](ctx, cfg, sources, parseIntKey, dump, w)
	case config.KeyTypeUint:
		return runWithKey[uint64](ctx, cfg, sources, parseUintKey, dump, w)
	case config.KeyTypeFloat:
		return runWithKey[float64](ctx, cfg, sources, parseFloatKey, dump, w)
	case config.KeyTypeString:
		return runWithKey[string](ctx, cfg, sources, parseStringKey, dump, w)
	}
	return moerr.NewBadConfigNoCtx("unknown key-type %q", cfg.HashTable.KeyType)
}

func runWithKey[K hashtable.Hashable](ctx context.Context, cfg *config.Config, sources []PairSource,
	parse keyParser[K], dump bool, w io.Writer) error {
	start := time.Now()
	l := &loader[K]{
		capacity: cfg.HashTable.InitialCapacity,
		workers:  cfg.HashTable.Workers,
		parse:    parse,
	}
	merged, err := l.Load(ctx, sources)
	if err != nil {
		return err
	}
	logutil.Elapsed("data files loaded", start,
		zap.Int("sources", len(sources)),
		zap.Int("pairs", merged.Size()))

	if err = writeSummary(w, merged); err != nil {
		return err
	}
	if dump {
		return writeSorted(w, merged)
	}
	return nil
}

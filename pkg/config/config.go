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

package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/matrixorigin/chainhash/pkg/common/moerr"
	"github.com/matrixorigin/chainhash/pkg/container/hashtable"
	"github.com/matrixorigin/chainhash/pkg/logutil"
)

const (
	KeyTypeInt    = "int"
	KeyTypeUint   = "uint"
	KeyTypeFloat  = "float"
	KeyTypeString = "string"
)

const (
	defaultKeyType   = KeyTypeString
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultMaxSize   = 512
)

// HashTableConfig controls how input files are loaded into tables.
type HashTableConfig struct {
	// InitialCapacity is the bucket count of every per-file table.
	InitialCapacity int `toml:"initial-capacity"`
	// KeyType selects how keys in data files are parsed.
	KeyType string `toml:"key-type"`
	// Workers is the size of the loader pool.
	Workers int `toml:"workers"`
}

type Config struct {
	HashTable HashTableConfig   `toml:"hashtable"`
	Log       logutil.LogConfig `toml:"log"`
}

// ParseFromFile decodes, fills and validates the configuration at path.
func ParseFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, moerr.NewFileNotFound(moerr.Context(), path)
		}
		return nil, err
	}
	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, moerr.NewParseErrorNoCtx("%s: %v", path, err)
	}
	return finish(cfg, md)
}

// ParseFromString is ParseFromFile for an in-memory document.
func ParseFromString(data string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, moerr.NewParseErrorNoCtx("%v", err)
	}
	return finish(cfg, md)
}

func finish(cfg *Config, md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, moerr.NewBadConfigNoCtx("unknown keys %s", strings.Join(keys, ", "))
	}
	cfg.Fill()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Fill sets every unset field to its default.
func (c *Config) Fill() {
	if c.HashTable.InitialCapacity == 0 {
		c.HashTable.InitialCapacity = hashtable.DefaultGrowCapacity
	}
	if len(c.HashTable.KeyType) == 0 {
		c.HashTable.KeyType = defaultKeyType
	}
	if c.HashTable.Workers == 0 {
		c.HashTable.Workers = runtime.NumCPU()
	}
	if len(c.Log.Level) == 0 {
		c.Log.Level = defaultLogLevel
	}
	if len(c.Log.Format) == 0 {
		c.Log.Format = defaultLogFormat
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = defaultMaxSize
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.HashTable.InitialCapacity < 0 {
		return moerr.NewBadConfigNoCtx("initial-capacity %d is negative", c.HashTable.InitialCapacity)
	}
	switch c.HashTable.KeyType {
	case KeyTypeInt, KeyTypeUint, KeyTypeFloat, KeyTypeString:
	default:
		return moerr.NewBadConfigNoCtx("unknown key-type %q", c.HashTable.KeyType)
	}
	if c.HashTable.Workers < 0 {
		return moerr.NewBadConfigNoCtx("workers %d is negative", c.HashTable.Workers)
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return moerr.NewBadConfigNoCtx("log level %q", c.Log.Level)
	}
	if c.Log.StacktraceLevel != "" {
		if err := level.UnmarshalText([]byte(c.Log.StacktraceLevel)); err != nil {
			return moerr.NewBadConfigNoCtx("log stacktrace-level %q", c.Log.StacktraceLevel)
		}
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return moerr.NewBadConfigNoCtx("log format %q", c.Log.Format)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxDays < 0 || c.Log.MaxBackups < 0 {
		return moerr.NewBadConfigNoCtx("log rotation limits must not be negative")
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type KeyDist string

const (
	KeysAscending KeyDist = "ASCENDING"
	KeysRandom    KeyDist = "RANDOM"
	KeysScrambled KeyDist = "SCRAMBLED"
)

type Config struct {
	N       uint32  `envconfig:"AVL_MEASURE_N" default:"100000"`
	Queries uint32  `envconfig:"AVL_MEASURE_QUERIES" default:"100000"`
	Seed    int64   `envconfig:"AVL_MEASURE_SEED" default:"0"`
	Keys    KeyDist `envconfig:"AVL_MEASURE_KEYS" default:"RANDOM"`
	Only    string  `envconfig:"AVL_MEASURE_ONLY"` // run a single container by name when set.
	Debug   bool    `envconfig:"AVL_MEASURE_DEBUG" default:"false"`
}

func loadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	switch c.Keys {
	case KeysAscending, KeysRandom, KeysScrambled:
	default:
		return nil, fmt.Errorf("unknown key distribution %q", c.Keys)
	}
	if c.N == 0 {
		return nil, fmt.Errorf("AVL_MEASURE_N must be positive")
	}
	return &c, nil
}

package qgame

import (
	"math/rand/v2"
	"time"
)

type Config struct {
	// MaxStateSize bounds the number of amplitudes a world may hold.
	MaxStateSize int
	// Seed makes sampling reproducible. Zero picks a seed from the clock.
	Seed uint64
}

func NewConfig() *Config {
	return &Config{
		MaxStateSize: 1 << 20,
	}
}

func (cfg *Config) rng() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envDefaults holds the flag defaults read from the environment.
type envDefaults struct {
	LowerPeriod float64 `env:"CWT_LOWER" envDefault:"2"`
	UpperPeriod float64 `env:"CWT_UPPER" envDefault:"0"`
	Dj          float64 `env:"CWT_DJ" envDefault:"0.004"`
	Dt          float64 `env:"CWT_DT" envDefault:"1"`
	Omega       float64 `env:"CWT_OMEGA" envDefault:"6"`
	Reflect     bool    `env:"CWT_REFLECT" envDefault:"false"`
	Detrend     bool    `env:"CWT_DETREND" envDefault:"false"`
}

func loadEnv() (envDefaults, error) {
	var cfg envDefaults
	if err := env.Parse(&cfg); err != nil {
		return envDefaults{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

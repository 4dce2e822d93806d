package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// axis is the configuration of one plot axis.
type axis struct {
	Name       string  `toml:"name"`
	Scale      float64 `toml:"scale"`
	MinSpacing float64 `toml:"min_spacing"`
	Pi         bool    `toml:"pi"`
	Range      string  `toml:"range"`
}

// config is an axis configuration file, e.g.
//
//	[[axis]]
//	name = "x"
//	scale = 100        # pixels per unit
//	min_spacing = 30   # pixels between ticks
//	pi = true
//	range = "(-pi, pi)"
type config struct {
	Axes []axis `toml:"axis"`
}

func loadConfig(path string) (*config, error) {
	var cfg config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if u := md.Undecoded(); len(u) != 0 {
		return nil, fmt.Errorf("%s: unknown keys %v", path, u)
	}
	if len(cfg.Axes) == 0 {
		return nil, fmt.Errorf("%s: no axes", path)
	}
	for i := range cfg.Axes {
		if cfg.Axes[i].Name == "" {
			cfg.Axes[i].Name = fmt.Sprintf("axis %d", i+1)
		}
	}
	return &cfg, nil
}

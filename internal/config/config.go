package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeed   = 2.0
	DefaultWidth   = 32
	DefaultDataDir = ".algoviz"
)

type Config struct {
	Algorithm string    `yaml:"algorithm"`
	Input     InputSpec `yaml:"input"`
	Speed     float64   `yaml:"speed"`
	Width     int       `yaml:"width"`
	DataDir   string    `yaml:"data_dir"`
}

type InputSpec struct {
	Values []int   `yaml:"values"`
	Target int     `yaml:"target"`
	Graph  [][]int `yaml:"graph"`
	Start  int     `yaml:"start"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: "bubble_sort",
		Input: InputSpec{
			Values: []int{64, 34, 25, 12, 22, 11, 90},
			Target: 22,
			Graph:  [][]int{{1, 2}, {0, 3, 4}, {0, 5}, {1}, {1, 5}, {2, 4}},
			Start:  0,
		},
		Speed:   DefaultSpeed,
		Width:   DefaultWidth,
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

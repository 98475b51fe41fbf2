package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultValue    = 1.0
	DefaultOmega    = 1.0
	DefaultTau      = 1.0
)

type Config struct {
	Signal       string       `yaml:"signal"`
	Rule         string       `yaml:"rule"`
	Dt           float64      `yaml:"dt"`
	Duration     float64      `yaml:"duration"`
	Acc0         float64      `yaml:"acc0"`
	SignalParams SignalConfig `yaml:"signal_params"`
}

type SignalConfig struct {
	Value     float64 `yaml:"value"`
	Amplitude float64 `yaml:"amplitude"`
	Omega     float64 `yaml:"omega"`
	Offset    float64 `yaml:"offset"`
	Slope     float64 `yaml:"slope"`
	Tau       float64 `yaml:"tau"`
}

func DefaultConfig() *Config {
	return &Config{
		Signal:   "constant",
		Rule:     "euler",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		SignalParams: SignalConfig{
			Value:     DefaultValue,
			Amplitude: DefaultValue,
			Omega:     DefaultOmega,
			Slope:     DefaultValue,
			Tau:       DefaultTau,
		},
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

func (c *Config) GetSignalParams() map[string]float64 {
	return map[string]float64{
		"value":     c.SignalParams.Value,
		"amplitude": c.SignalParams.Amplitude,
		"omega":     c.SignalParams.Omega,
		"offset":    c.SignalParams.Offset,
		"slope":     c.SignalParams.Slope,
		"tau":       c.SignalParams.Tau,
	}
}

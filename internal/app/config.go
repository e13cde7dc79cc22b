package app

import (
	"errors"
	"fmt"

	"github.com/vk/edgecpwg/internal/cpwg"
	"github.com/vk/edgecpwg/internal/report"
)

// Mode selects where the parameter sets come from.
type Mode int

const (
	// ModeSingle evaluates the six command-line parameters.
	ModeSingle Mode = iota
	// ModeBatch evaluates every line block found under GridPath.
	ModeBatch
)

// SingleLineName names the command-line parameter set in reports.
const SingleLineName = "cli"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode     Mode
	Params   cpwg.Params // ModeSingle only
	GridPath string      // ModeBatch only: .hcl file or directory

	Output      report.Format
	LogFormat   string
	LogLevel    string
	WorkerCount int
	Strict      bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Mode {
	case ModeSingle:
		if cfg.GridPath != "" {
			return nil, errors.New("GridPath must be empty when evaluating command-line parameters")
		}
	case ModeBatch:
		if cfg.GridPath == "" {
			return nil, errors.New("GridPath is a required configuration field in batch mode")
		}
	default:
		return nil, fmt.Errorf("unknown mode %d", cfg.Mode)
	}

	if _, err := report.ParseFormat(string(cfg.Output)); err != nil {
		return nil, err
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}

	return &cfg, nil
}

// Package config loads the optional .crs.yaml policy file from the working
// directory. Every field has a default; a missing or partial file is fine.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MOYARU/crs/internal/engine"
	"github.com/MOYARU/crs/internal/signals"
)

const PolicyPath = ".crs.yaml"

type Policy struct {
	TimeoutSeconds int             `yaml:"timeout_seconds"`
	UserAgent      string          `yaml:"user_agent"`
	ReportDir      string          `yaml:"report_dir"`
	Weights        signals.Weights `yaml:"weights"`
}

func (p Policy) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

func DefaultPolicy() Policy {
	return Policy{
		TimeoutSeconds: int(engine.DefaultTimeout / time.Second),
		ReportDir:      "reports",
		Weights:        signals.DefaultWeights(),
	}
}

// LoadPolicy reads .crs.yaml if present. Keys absent from the file keep
// their defaults, so a file overriding a single weight is valid.
func LoadPolicy() (Policy, error) {
	return loadPolicy(PolicyPath)
}

func loadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPolicy(), fmt.Errorf("parse %s: %w", path, err)
	}

	if p.TimeoutSeconds <= 0 {
		p.TimeoutSeconds = DefaultPolicy().TimeoutSeconds
	}
	if p.ReportDir == "" {
		p.ReportDir = DefaultPolicy().ReportDir
	}

	return p, nil
}

package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/interviewd/internal/api"
	"github.com/nikmy/interviewd/internal/calendar"
	"github.com/nikmy/interviewd/internal/notify"
	"github.com/nikmy/interviewd/internal/reconciler"
	"github.com/nikmy/interviewd/internal/repo"
	"github.com/nikmy/interviewd/pkg/environment"
	"github.com/nikmy/interviewd/pkg/errors"
)

type Config struct {
	Environment environment.Env   `yaml:"Environment"`
	Mongo       repo.Config       `yaml:"Mongo"`
	API         api.Config        `yaml:"API"`
	Calendar    calendar.Config   `yaml:"Calendar"`
	Notify      notify.Config     `yaml:"Notify"`
	Reconciler  reconciler.Config `yaml:"Reconciler"`
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read \"config.yaml\"")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if envFromFlags := getEnvFromFlags(); envFromFlags != nil {
		cfg.Environment = *envFromFlags
	}

	return &cfg, nil
}

func getEnvFromFlags() *environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	return envOverride(*raw)
}

// envOverride keeps the yaml value when the flag is absent.
func envOverride(raw string) *environment.Env {
	if raw == "" {
		return nil
	}

	env := environment.FromString(raw)
	return &env
}

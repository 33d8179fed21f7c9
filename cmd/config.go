package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LeagueConfig holds the league-level knobs for creating and running games.
type LeagueConfig struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is the save-slot directory for the JSON file store.
	DataDir string `koanf:"data_dir"`

	// StartYear is the first simulated year of a new game.
	StartYear int `koanf:"start_year"`

	// PlayersPerTeam sets the roster size at new-game setup.
	PlayersPerTeam int `koanf:"players_per_team"`

	// ConferenceIDs selects which conferences join a new game; empty means all.
	ConferenceIDs []int64 `koanf:"conference_ids"`
}

// DefaultLeagueConfig returns the built-in defaults.
func DefaultLeagueConfig() *LeagueConfig {
	return &LeagueConfig{
		LogLevel:       "info",
		DataDir:        "saves",
		StartYear:      2024,
		PlayersPerTeam: 12,
	}
}

// LoadLeagueConfig builds a LeagueConfig by layering defaults, an optional
// YAML file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (DefaultLeagueConfig)
//  2. file (YAML) from path, or XCSIM_CONFIG if path is empty
//  3. env (prefix XCSIM_)
func LoadLeagueConfig(path string) (*LeagueConfig, error) {
	base := DefaultLeagueConfig()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("XCSIM_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: XCSIM_DATA_DIR, XCSIM_PLAYERS_PER_TEAM, ...
	// Map env keys like XCSIM_DATA_DIR -> data_dir (flat keys), preserving
	// underscores to match the koanf tags on the struct.
	envProvider := env.Provider("XCSIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "xcsim_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.PlayersPerTeam <= 0 {
		return nil, errors.New("players_per_team must be positive")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("data_dir must not be empty")
	}
	return &cfg, nil
}

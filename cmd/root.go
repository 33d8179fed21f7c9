package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chrislardner/sim-game-sub000/sim"
	"github.com/chrislardner/sim-game-sub000/sim/refdata"
)

var (
	// Persistent CLI flags
	configPath string // Optional league config YAML path
	dataDir    string // Save-slot directory (overrides config)
	logLevel   string // Log verbosity level

	leagueCfg *LeagueConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "xcsim",
	Short: "Season simulator for collegiate cross-country and track & field",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadLeagueConfig(configPath)
		if err != nil {
			logrus.Fatalf("Invalid league config: %v", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)
		leagueCfg = cfg
	},
}

// openStore opens the JSON file store rooted at the configured data dir.
func openStore() *sim.FileStore {
	store, err := sim.NewFileStore(leagueCfg.DataDir)
	if err != nil {
		logrus.Fatalf("Unable to open save store: %v", err)
	}
	return store
}

// nameCorpus loads the embedded recruit-naming corpus.
func nameCorpus() sim.NameSource {
	names, err := refdata.Names()
	if err != nil {
		logrus.Fatalf("Unable to load name corpus: %v", err)
	}
	return names
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to league config YAML (default $XCSIM_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Save-slot directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

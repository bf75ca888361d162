package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"factoryflow/internal/config"
	"factoryflow/internal/util"
)

var (
	// Logging related
	debug bool

	// Data path override
	dataDir string

	// Optional .env file
	envFile string

	rootCmd = &cobra.Command{
		Use:   "factoryflow",
		Short: "Manufacturing analytics engine",
		Long: `factoryflow analyzes workforce roster (ERP), shop-floor execution (MES)
and part catalog (PLM) extracts to surface bottlenecks, inefficiencies and
improvement opportunities.

Examples:
  factoryflow serve                        # Run the dashboard API server
  factoryflow analyze                      # Print the findings report
  factoryflow analyze --output json        # Findings as JSON
  factoryflow serve --dir /srv/factory     # Use another data directory`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "",
		"Data directory holding erp.csv, mes.csv and plm.csv (overrides FACTORYFLOW_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"Path to a .env file to load before reading the environment")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

// loadConfig resolves flags against the environment and initializes logging.
func loadConfig() *config.Config {
	cfg := config.Load(envFile)
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	util.InitLogger(cfg.LogLevel, expandPath(cfg.LogFile), debug)
	return cfg
}

func Execute() error {
	return rootCmd.Execute()
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

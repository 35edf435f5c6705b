package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"fitness-spc/src/analysis"
	"fitness-spc/src/config"
	"fitness-spc/src/helpers"
	"fitness-spc/src/interfaces"
	"fitness-spc/src/logger"
	"fitness-spc/src/storage"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config/default.yaml"

var (
	configPath string
	appConfig  *config.Config
	appLogger  *logger.Logger
)

// -----------------------------------------------------------------------------

var rootCmd = &cobra.Command{
	Use:   "fitness-spc",
	Short: "Statistical process control for daily health metrics",
	Long: `Logs daily weight, activity and nutrition, and charts them with
individuals/moving-range control limits, process capability and energy balance.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		appConfig = cfg
		appLogger = logger.NewLogger(cfg.LogLevel, cfg.Name)
		// Keep stdout for reports
		appLogger.SetOutput(os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config file")
}

// -----------------------------------------------------------------------------

// loadConfig reads the YAML file. A missing default file falls back to the
// built-in defaults; a missing explicit file is an error.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.NewConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, helpers.NewConfigurationError(err, "load config")
}

// -----------------------------------------------------------------------------

// openAnalyzer connects storage and builds the facade over it. The caller
// closes the returned database.
func openAnalyzer() (*analysis.AnalysisFacade, interfaces.IDatabase, error) {
	db, err := storage.New(appConfig.MConfig, appLogger)
	if err != nil {
		return nil, nil, err
	}

	handler := helpers.NewErrorHandler(appLogger)
	if err := handler.ExecuteWithRetry("database initialize", db.Initialize, appConfig.Storage.ConnectRetries); err != nil {
		db.Close()
		return nil, nil, err
	}

	return analysis.NewAnalysisFacade(appConfig.MConfig, db, appLogger), db, nil
}

// -----------------------------------------------------------------------------

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

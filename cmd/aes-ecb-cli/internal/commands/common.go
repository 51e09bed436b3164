package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/aes-ecb/internal/app"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/config"
	"github.com/MGTheTrain/aes-ecb/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// EnvConfigPath names the configuration file when --config is not given
const EnvConfigPath = "CONFIG_PATH"

// RegisterDispatchFlags adds the backend selection flags shared by all commands
func RegisterDispatchFlags(rootCmd *cobra.Command) {
	defaults := app.DefaultDispatchSettings()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file (defaults to $"+EnvConfigPath+")")
	flags.String("backend", defaults.Backend, "Block backend: software, cpu, external or hardware")
	flags.String("strategy", defaults.Strategy, "Driver strategy: single-block, parallel, chunked or stream")
	flags.Int("max-chunk-bytes", defaults.MaxChunkBytes, "Per call cap of the hardware backend, a multiple of 16")
	flags.Int("workers", defaults.Workers, "Number of workers of the parallel strategy")
	flags.String("log-level", config.LogLevelInfo, "Log level: debug, info, warning, error or critical")
}

// loadSettings reads the configuration file if one is given and lets explicitly set flags override it.
// Validation is left to the caller, which checks only the sections it uses.
func loadSettings(cmd *cobra.Command) (*config.AppConfig, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := &config.AppConfig{
		Logger:   *config.DefaultLoggerSettings(),
		Dispatch: *app.DefaultDispatchSettings(),
	}
	if path != "" {
		if cfg, err = config.LoadAppConfig(path); err != nil {
			return nil, err
		}
	}

	if flags.Changed("backend") {
		if cfg.Dispatch.Backend, err = flags.GetString("backend"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("strategy") {
		if cfg.Dispatch.Strategy, err = flags.GetString("strategy"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-chunk-bytes") {
		if cfg.Dispatch.MaxChunkBytes, err = flags.GetInt("max-chunk-bytes"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("workers") {
		if cfg.Dispatch.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-level") || path == "" {
		if cfg.Logger.LogLevel, err = flags.GetString("log-level"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newECBService builds the logger and the ECB service for one command invocation
func newECBService(cmd *cobra.Command) (*app.ECBService, logger.Logger, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.NewECBService(&cfg.Dispatch, log, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ECB service: %w", err)
	}
	return svc, log, nil
}

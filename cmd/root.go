package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/config"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
)

const defaultConfigPath = "config.toml"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "scheduling-assistant",
		Short:         "Conversational scheduling assistant for a Cal.com calendar",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to TOML configuration")

	root.AddCommand(
		newServeCmd(&configPath),
		newChatCmd(&configPath),
		newParseCmd(),
	)
	return root
}

// loadRuntime загружает конфигурацию и создает логгер
func loadRuntime(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

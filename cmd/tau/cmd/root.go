package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
	"tau/internal/app/client"
	"tau/internal/app/client/config"
	"tau/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	wait       bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "tau",
	Short: "tau - offline-first study planner",
	Long: `tau keeps your disciplines, tasks and weekly class schedule on this
device and synchronizes them with the planner server.

Every change is saved locally first and then sent to the server. When the
server cannot be reached the change stays on the device and is sent by the
next "tau sync".`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if app != nil {
		if shutdownErr := app.Shutdown(); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}

	if err != nil {
		render.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.New(cfg.Env, logger.WithLevel(level), logger.WithFile(cfg.LogFile))

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}

	cmd.SetContext(types.WithApp(cmd.Context(), app, types.Options{
		JSON: jsonOutput,
		Wait: wait,
	}))

	return nil
}

func loadConfig() (*config.Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tau"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	return config.Load(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.tau/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&wait, "wait", false, "wait for the server to confirm each change")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "planner server address")
}

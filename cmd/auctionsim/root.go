package main

import (
	"fmt"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "AUCTIONSIM"

	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagLogJSON  = "log-json"
	flagListen   = "listen"
	flagStrict   = "strict"
)

// NewRootCmd returns the auctionsim command tree. Every flag can also be set in
// the config file or through an AUCTIONSIM_ prefixed environment variable.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "auctionsim",
		Short:         "Run escrowed auction scenarios against an in-memory chain",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}

	cmd.PersistentFlags().String(flagConfig, "", "path to a YAML config file holding the scenario")
	cmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().Bool(flagLogJSON, false, "emit logs as JSON")

	cmd.AddCommand(
		NewRunCmd(v),
		NewServeCmd(v),
	)

	return cmd
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	return nil
}

// newLogger builds the zerolog backed logger handed to the chain.
func newLogger(v *viper.Viper) (log.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := []log.Option{log.LevelOption(level)}
	if v.GetBool(flagLogJSON) {
		opts = append(opts, log.OutputJSONOption())
	}

	return log.NewLogger(os.Stderr, opts...).With(log.ModuleKey, "auctionsim"), nil
}

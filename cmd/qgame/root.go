package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qgame"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Verbose    bool

	v *viper.Viper
}

/*
QuantumConfig builds the quantum world configuration from, in order of
precedence, flags, QGAME_* environment variables and the config file.
*/
func (opts *RootOptions) QuantumConfig() *qgame.Config {
	cfg := qgame.NewConfig()
	cfg.Seed = opts.v.GetUint64("seed")
	cfg.MaxStateSize = opts.v.GetInt("max_state_size")
	return cfg
}

// NewRootCommand creates the root command for the qgame CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{v: viper.New()}

	opts.v.SetEnvPrefix("QGAME")
	opts.v.AutomaticEnv()
	opts.v.SetDefault("seed", 0)
	opts.v.SetDefault("max_state_size", qgame.NewConfig().MaxStateSize)

	cmd := &cobra.Command{
		Use:           "qgame",
		Short:         "Quantum variants of classical games",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigFile == "" {
				return nil
			}

			opts.v.SetConfigFile(opts.ConfigFile)
			if err := opts.v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (yaml, toml or json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print quantum world metrics")
	cmd.PersistentFlags().Uint64("seed", 0, "random seed for measurements (0 picks one)")
	_ = opts.v.BindPFlag("seed", cmd.PersistentFlags().Lookup("seed"))

	cmd.AddCommand(NewBoardCommand(opts))
	cmd.AddCommand(NewWalkCommand(opts))

	return cmd
}

func printMetrics(cmd *cobra.Command, opts *RootOptions, world *qgame.QuantumWorld) {
	if !opts.Verbose {
		return
	}

	for _, key := range []string{"objects", "frames", "operations", "pops", "state_size"} {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s=%v\n", key, world.Metrics().ExportMetrics()[key])
	}
}

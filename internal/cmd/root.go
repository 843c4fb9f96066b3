// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pegasus-wms/tc/internal/config"
	"github.com/pegasus-wms/tc/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE
	tcConfig       *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the tc CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tc",
		Short: "Transformation catalog CLI",
		Long: `tc reads, validates, compares, and converts Pegasus transformation
catalogs in the version 5.0 file format.

A transformation catalog maps logical transformation names to the
sites and physical executables that realize them, plus the containers
the executables run in.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: TC_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConvertCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// Commands that never read the config still work; the resolver
		// falls back to built-in defaults.
		output.Debug("config load error", "error", err)
	}
	tcConfig = loaded

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag: configFlag,
		Config:     tcConfig,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Timestamps: flag (when explicitly set) > config > default (on).
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if tcConfig != nil && tcConfig.Log.Timestamps != nil {
		logCfg.Timestamps = tcConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(resolvedConfig.Values())
	}

	return nil
}

// GetConfig returns the loaded configuration. It is nil when no config
// file could be read.
func GetConfig() *config.Config {
	return tcConfig
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath.Value
	}
	return configFlag
}

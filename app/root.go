// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-randomstring/randomstring/internal/config"
)

// EnvPrefix prefixes the environment variables read by the commands.
const EnvPrefix = "RANDOMSTRING"

// NewRootCmd returns the randomstring command tree.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "randomstring",
		Short: "randomstring generates random strings",
		Long: `randomstring generates random strings from a preset or custom charset
using a cryptographically secure random source. It runs as a command line
tool or as a JSON web service.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("config", "", "directory holding main.toml (env "+EnvPrefix+"_CONFIG)")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(
		newGenerateCmd(v),
		newPresetsCmd(),
		newServeCmd(v),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the config directory if one is given, the built-in defaults otherwise.
func loadConfig(v *viper.Viper) (config.Config, error) {
	path := v.GetString("config")
	if path == "" {
		return config.Default(), nil
	}

	if path[len(path)-1] != '/' {
		path += "/"
	}

	return config.ReadConfig(path)
}

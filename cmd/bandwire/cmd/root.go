/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openband/bandwire/pkg/band"
	"github.com/openband/bandwire/pkg/config"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bandwire",
	Short: "Bandwire - Band wire-format toolbox",
	Long: `Bandwire decodes, encodes, and verifies the fixed-size binary
records of the Band command protocol: tiles, profiles, system time,
and firmware versions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default is the platform config path)")
}

// loadConfig resolves the active configuration: the --config file if
// given, the platform default path if one exists there, otherwise the
// built-in defaults.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.GetDefaultConfigPath()
		if !config.ConfigExists(path) {
			return config.DefaultConfig(), nil
		}
	}
	return config.LoadConfig(path)
}

func loadRegistry() (*band.Registry, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return band.NewRegistry(cfg.Records.ProfileSize), cfg, nil
}

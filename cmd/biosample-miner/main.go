// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the biosample-miner CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the biosample-miner CLI.
var rootCmd = &cobra.Command{
	Use:   "biosample-miner",
	Short: "Correlate biosample records across compound names and identifiers",
	Long: `biosample-miner queries the ChEMBL and BioSamples SPARQL endpoints to find
biological samples associated with a chemical compound under any of its
known names and identifiers, then summarizes the results as count tables
and overlap matrices.

Each retrieval is a subcommand: labels resolves a compound's alternate
names, samples aggregates biosample matches per name, chebi retrieves
samples by ontology id, and analyze runs the full workflow for a compound
set.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./biosample-miner.yaml or ~/.config/biosample-miner/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("biosample-miner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "biosample-miner"))
		}
	}

	viper.SetEnvPrefix("BIOSAMPLE_MINER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

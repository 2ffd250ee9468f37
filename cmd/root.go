package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// configPath is the optional YAML file layered under the environment
var configPath string

var rootCmd = &cobra.Command{
	Use:   "mediahub",
	Short: "mediahub - image gallery and link collection API",
	Long: `mediahub serves a JSON API under /api for "images" galleries and "links"
collections, with registration and login issuing bearer tokens.

Configuration is read from the environment (and a .env file when present),
optionally layered over a YAML file passed with --config.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

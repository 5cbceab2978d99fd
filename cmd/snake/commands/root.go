package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake plays the classic snake game in a terminal or a browser",
	Version:           version.Version,
	PersistentPreRunE: setup,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	configFile string
	logLevel   = "info"
	apiAddr    = "http://localhost:3005"

	cfg config.Config
)

func setup(*cobra.Command, []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	cfg, err = config.Load(configFile)
	return err
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, one of: [debug, info, warn, error]")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scribe "github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/internal/app"
	"github.com/iw2rmb/scribe/internal/config"
	"github.com/iw2rmb/scribe/internal/log"
)

func main() {
	var (
		debug      bool
		logFile    string
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "scribe [file...]",
		Short:   "A tabbed terminal text editor",
		Long:    `Scribe is a tabbed text editor for the terminal. Files given as arguments are opened in their own tabs.`,
		Version: scribe.Version(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				if err := log.SetDebug(logFile); err != nil {
					return fmt.Errorf("could not enable debug logging: %w", err)
				}
			}

			var cfg *config.Config
			var err error
			if configFile != "" {
				cfg, err = config.LoadFile(configFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			return app.Run(cfg, args)
		},
	}

	rootCmd.Flags().BoolVar(&debug, "debug", false, "write debug logs to a file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "debug log destination (default: user cache dir)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (default: ~/.config/scribe/config.yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

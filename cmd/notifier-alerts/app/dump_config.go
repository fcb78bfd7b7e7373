package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mx-watch/notifier-alerts/config"
)

var DumpConfigCmd = &cobra.Command{
	Use:   "dump-config <file.yaml>",
	Short: "Write the effective configuration to a yaml file and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alertsConfig, err := config.Load(viper.GetString("config"))
		if err != nil {
			return fmt.Errorf("failed to load app config: %w", err)
		}

		err = alertsConfig.DumpConfig(args[0])
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", args[0])
		return nil
	},
}

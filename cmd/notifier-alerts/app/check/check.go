package check

import (
	"fmt"
	"os"

	"github.com/enescakir/emoji"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mx-watch/notifier-alerts/config"
	"github.com/mx-watch/notifier-alerts/internal/alert"
)

var Cmd = &cobra.Command{
	Use:   "check <file.json>",
	Short: "Run the alert extractor over a block payload file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alertsConfig, err := config.Load(viper.GetString("config"))
		if err != nil {
			return fmt.Errorf("failed to load app config: %w", err)
		}

		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}

		extractor := alert.NewExtractor(
			alert.WithIdentifiers(alertsConfig.Alerts.Identifiers...),
			alert.WithAddressPrefix(alertsConfig.Alerts.AddressPrefix),
		)

		alerts, err := extractor.ExtractFromJSON(payload)
		if err != nil {
			return err
		}

		if len(alerts) == 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s no alerts found\n", emoji.CheckMarkButton)
			return nil
		}

		t := getAlertsTable(alerts)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d alert(s) found\n", emoji.Warning, len(alerts))

		return nil
	},
}

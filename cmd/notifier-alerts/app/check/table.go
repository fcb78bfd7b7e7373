package check

import (
	"fmt"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mx-watch/notifier-alerts/internal/alert"
)

func getAlertsTable(alerts []alert.Alert) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Tx hash", "Address", "Identifier", "Block", "Time"})

	for i, a := range alerts {
		t.AppendRow(table.Row{i + 1, a.TxHash, a.Address, a.Identifier, a.BlockHash, blockTime(a.TimeStamp)})
	}

	t.AppendFooter(table.Row{"", "", "", "", "Total", fmt.Sprintf("%d", len(alerts))})

	return t
}

func blockTime(ts uint64) string {
	if ts == 0 {
		return ""
	}

	seconds, err := safecast.ToInt64(ts)
	if err != nil {
		return fmt.Sprintf("%d", ts)
	}

	return time.Unix(seconds, 0).UTC().Format(time.RFC3339)
}

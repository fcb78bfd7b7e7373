package check

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mx-watch/notifier-alerts/internal/alert"
)

func TestGetAlertsTable(t *testing.T) {
	// given
	alerts := []alert.Alert{
		{TxHash: "aa", Address: "erd1a", Identifier: alert.ChangeOwnerAddress, BlockHash: "b1"},
		{TxHash: "bb", Address: "erd1b", Identifier: alert.ChangeOwnerAddress, BlockHash: "b1"},
	}

	// when
	actual := getAlertsTable(alerts).Render()

	// then
	require.Contains(t, actual, "TX HASH")
	require.Contains(t, actual, "erd1a")
	require.Contains(t, actual, "erd1b")
	require.Contains(t, actual, "TOTAL")
}

func TestBlockTime(t *testing.T) {
	require.Equal(t, "", blockTime(0))
	require.Equal(t, "2023-01-23T08:40:00Z", blockTime(1674463200))
	require.Equal(t, "18446744073709551615", blockTime(^uint64(0)))
}

func TestCheckCmd(t *testing.T) {
	tt := []struct {
		name    string
		payload string

		expectedOutput []string
		expectedErr    error
	}{
		{
			name:    "fixture",
			payload: filepath.Join("..", "..", "..", "..", "internal", "alert", "testdata", "txs_test.json"),

			expectedOutput: []string{
				"6b100923f6a3e29c14d8b75910bfa2e44876e77de15c1e2a9d65cfacdab8d59d",
				"erd1qqqqqqqqqqqqqpgqvrdx4n97ensz534rw6s2pn5rfugwv7sl0tgqwzfgxv",
				"ChangeOwnerAddress",
				"2023-01-23T08:40:00Z",
				"1 alert(s) found",
			},
		},
		{
			name:    "no alerts",
			payload: "empty",

			expectedOutput: []string{"no alerts found"},
		},
		{
			name:    "invalid payload",
			payload: "invalid",

			expectedErr: alert.ErrInvalidPayload,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			path := tc.payload
			switch tc.payload {
			case "invalid":
				path = filepath.Join(t.TempDir(), "invalid.json")
				require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
			case "empty":
				path = filepath.Join(t.TempDir(), "empty.json")
				require.NoError(t, os.WriteFile(path, []byte(`{"hash":"abc","events":[]}`), 0o600))
			}

			out := &bytes.Buffer{}
			Cmd.SetOut(out)

			// when
			err := Cmd.RunE(Cmd, []string{path})

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			for _, expected := range tc.expectedOutput {
				require.Contains(t, out.String(), expected)
			}
		})
	}
}

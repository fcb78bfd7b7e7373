package alert

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeAddress(t *testing.T) {
	tt := []struct {
		name      string
		hrp       string
		pubKeyHex string

		expectedAddress string
		expectedErr     error
	}{
		{
			name:            "smart contract",
			hrp:             "erd",
			pubKeyHex:       "0000000000000000050060da6accbecce02a46a376a0a0ce834f10e67a1f7ad0",
			expectedAddress: "erd1qqqqqqqqqqqqqpgqvrdx4n97ensz534rw6s2pn5rfugwv7sl0tgqwzfgxv",
		},
		{
			name:            "user account",
			hrp:             "erd",
			pubKeyHex:       "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1",
			expectedAddress: "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th",
		},
		{
			name:        "empty public key",
			hrp:         "erd",
			pubKeyHex:   "",
			expectedErr: ErrInvalidAddress,
		},
		{
			name:        "empty prefix",
			hrp:         "",
			pubKeyHex:   "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1",
			expectedErr: ErrInvalidAddress,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			pubKey, err := hex.DecodeString(tc.pubKeyHex)
			require.NoError(t, err)

			// when
			actual, err := EncodeAddress(tc.hrp, pubKey)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedAddress, actual)
		})
	}
}

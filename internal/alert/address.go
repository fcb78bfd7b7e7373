package alert

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

var ErrInvalidAddress = errors.New("invalid address")

// EncodeAddress renders a public key as a bech32 address with the given human
// readable prefix.
func EncodeAddress(hrp string, pubKey []byte) (string, error) {
	if hrp == "" {
		return "", errors.Join(ErrInvalidAddress, errors.New("empty prefix"))
	}
	if len(pubKey) == 0 {
		return "", errors.Join(ErrInvalidAddress, errors.New("empty public key"))
	}

	conv, err := bech32.ConvertBits(pubKey, 8, 5, true)
	if err != nil {
		return "", errors.Join(ErrInvalidAddress, err)
	}

	address, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", errors.Join(ErrInvalidAddress, fmt.Errorf("hrp: %s", hrp), err)
	}

	return address, nil
}

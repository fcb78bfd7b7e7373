package alert

import (
	"cmp"
	"encoding/json"
	"errors"
	"slices"
	"strings"
)

const (
	ChangeOwnerAddress = "ChangeOwnerAddress"

	defaultAddressPrefix = "erd"
	argumentsSeparator   = "@"
)

var (
	ErrInvalidPayload = errors.New("invalid block payload")
	ErrNoAlert        = errors.New("no qualifying transaction found")
)

type Extractor struct {
	identifiers   []string
	addressPrefix string
}

func WithIdentifiers(identifiers ...string) func(*Extractor) {
	return func(e *Extractor) {
		if len(identifiers) > 0 {
			e.identifiers = identifiers
		}
	}
}

func WithAddressPrefix(hrp string) func(*Extractor) {
	return func(e *Extractor) {
		if hrp != "" {
			e.addressPrefix = hrp
		}
	}
}

type Option func(*Extractor)

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		identifiers:   []string{ChangeOwnerAddress},
		addressPrefix: defaultAddressPrefix,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Extractor) ExtractFromJSON(payload []byte) ([]Alert, error) {
	var block BlockData

	err := json.Unmarshal(payload, &block)
	if err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}

	return e.Extract(&block), nil
}

// Extract returns the alerts for all qualifying transactions of the block,
// sorted by tx hash and identifier. A transaction found through a log event
// and through its call data yields a single alert.
func (e *Extractor) Extract(block *BlockData) []Alert {
	if block == nil {
		return nil
	}

	found := make(map[string]Alert)

	for _, event := range block.Events {
		if !e.isWatched(event.Identifier) {
			continue
		}

		a := Alert{
			TxHash:     event.TxHash,
			Address:    event.Address,
			Identifier: event.Identifier,
			BlockHash:  block.Hash,
			TimeStamp:  block.TimeStamp,
		}
		found[a.Key()] = a
	}

	for txHash, tx := range block.Txs {
		if tx == nil {
			continue
		}

		identifier := callIdentifier(tx.Data)
		if !e.isWatched(identifier) {
			continue
		}

		key := txHash + "_" + identifier
		if _, ok := found[key]; ok {
			continue
		}

		address, err := EncodeAddress(e.addressPrefix, tx.Receiver)
		if err != nil {
			continue
		}

		found[key] = Alert{
			TxHash:     txHash,
			Address:    address,
			Identifier: identifier,
			BlockHash:  block.Hash,
			TimeStamp:  block.TimeStamp,
		}
	}

	alerts := make([]Alert, 0, len(found))
	for _, a := range found {
		alerts = append(alerts, a)
	}

	slices.SortFunc(alerts, func(a, b Alert) int {
		return cmp.Or(
			cmp.Compare(a.TxHash, b.TxHash),
			cmp.Compare(a.Identifier, b.Identifier),
		)
	})

	return alerts
}

func (e *Extractor) isWatched(identifier string) bool {
	return identifier != "" && slices.Contains(e.identifiers, identifier)
}

// callIdentifier returns the function name of smart contract call data of the
// form "function@arg1@arg2".
func callIdentifier(data []byte) string {
	function, _, _ := strings.Cut(string(data), argumentsSeparator)
	return function
}

// HandleTxsBlockData scans a block payload for ownership changes and returns
// the alert text. Multiple alerts are separated by new lines.
func HandleTxsBlockData(payload []byte) (string, error) {
	alerts, err := NewExtractor().ExtractFromJSON(payload)
	if err != nil {
		return "", err
	}

	if len(alerts) == 0 {
		return "", ErrNoAlert
	}

	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		lines = append(lines, a.String())
	}

	return strings.Join(lines, "\n"), nil
}

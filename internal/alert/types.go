package alert

import (
	"fmt"
	"math/big"
)

// BlockData is the block payload published by the events notifier. Only the
// fields needed to find qualifying transactions are decoded.
type BlockData struct {
	Hash      string                  `json:"hash"`
	ShardID   uint32                  `json:"shardId"`
	TimeStamp uint64                  `json:"timestamp"`
	Events    []Event                 `json:"events"`
	Txs       map[string]*Transaction `json:"txs"`
}

// Event is a log event. Address is bech32 encoded by the notifier.
type Event struct {
	Address    string   `json:"address"`
	Identifier string   `json:"identifier"`
	Topics     [][]byte `json:"topics"`
	Data       []byte   `json:"data"`
	TxHash     string   `json:"txHash"`
}

// Transaction carries raw public keys for sender and receiver.
type Transaction struct {
	Nonce     uint64   `json:"nonce"`
	Value     *big.Int `json:"value"`
	Receiver  []byte   `json:"receiver"`
	Sender    []byte   `json:"sender"`
	GasPrice  uint64   `json:"gasPrice"`
	GasLimit  uint64   `json:"gasLimit"`
	Data      []byte   `json:"data"`
	ChainID   []byte   `json:"chainID"`
	Version   uint32   `json:"version"`
	Signature []byte   `json:"signature,omitempty"`
}

type Alert struct {
	TxHash     string `json:"txHash"`
	Address    string `json:"address"`
	Identifier string `json:"identifier"`
	BlockHash  string `json:"blockHash,omitempty"`
	TimeStamp  uint64 `json:"timestamp,omitempty"`
}

func (a Alert) String() string {
	return fmt.Sprintf("ALERT: found tx %s for %s with %s", a.TxHash, a.Address, a.Identifier)
}

// Key identifies an alert independently of the block it was found in.
func (a Alert) Key() string {
	return a.TxHash + "_" + a.Identifier
}

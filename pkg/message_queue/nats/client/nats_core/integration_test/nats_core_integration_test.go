package integration_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	testutils "github.com/mx-watch/notifier-alerts/internal/test_utils"
	"github.com/mx-watch/notifier-alerts/pkg/message_queue/nats/client/nats_core"
	"github.com/mx-watch/notifier-alerts/pkg/message_queue/nats/nats_connection"
)

type forwardedAlert struct {
	TxHash     string `json:"txHash"`
	Address    string `json:"address"`
	Identifier string `json:"identifier"`
}

func TestNatsCoreClient(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, natsURL, err := testutils.RunNats(pool, "4337", "nats-alerts")
	require.NoError(t, err)
	defer func() {
		_ = pool.Purge(resource)
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var conn *nats.Conn
	err = testutils.Retry(func() error {
		var connErr error
		conn, connErr = nats_connection.New(natsURL, logger)
		return connErr
	})
	require.NoError(t, err)

	subscriberConn, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer subscriberConn.Close()

	received := make(chan *nats.Msg, 1)
	sub, err := subscriberConn.ChanSubscribe("notifier-alerts", received)
	require.NoError(t, err)
	defer func() {
		_ = sub.Unsubscribe()
	}()
	require.NoError(t, subscriberConn.Flush())

	sut := nats_core.New(conn, nats_core.WithLogger(logger))
	defer sut.Shutdown()

	// given
	expected := forwardedAlert{
		TxHash:     "6b100923f6a3e29c14d8b75910bfa2e44876e77de15c1e2a9d65cfacdab8d59d",
		Address:    "erd1qqqqqqqqqqqqqpgqvrdx4n97ensz534rw6s2pn5rfugwv7sl0tgqwzfgxv",
		Identifier: "ChangeOwnerAddress",
	}

	// when
	err = sut.PublishJSON(context.Background(), "notifier-alerts", expected)
	require.NoError(t, err)

	// then
	select {
	case msg := <-received:
		var actual forwardedAlert
		require.NoError(t, json.Unmarshal(msg.Data, &actual))
		require.Equal(t, expected, actual)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for forwarded alert")
	}

	require.Equal(t, nats.CONNECTED, sut.Status())
}

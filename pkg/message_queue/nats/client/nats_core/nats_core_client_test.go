package nats_core_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/mx-watch/notifier-alerts/pkg/message_queue/nats/client/nats_core"
	"github.com/mx-watch/notifier-alerts/pkg/message_queue/nats/client/nats_core/mocks"
)

const subject = "notifier-alerts"

func TestPublish(t *testing.T) {
	tt := []struct {
		name       string
		ctxDone    bool
		publishErr error

		expectedError        error
		expectedPublishCalls int
	}{
		{
			name: "success",

			expectedPublishCalls: 1,
		},
		{
			name:       "publish err",
			publishErr: errors.New("nats: connection closed"),

			expectedError:        nats_core.ErrFailedToPublish,
			expectedPublishCalls: 1,
		},
		{
			name:    "context canceled",
			ctxDone: true,

			expectedError:        nats_core.ErrFailedToPublish,
			expectedPublishCalls: 0,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			natsMock := &mocks.NatsConnectionMock{
				PublishFunc: func(_ string, _ []byte) error {
					return tc.publishErr
				},
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
			sut := nats_core.New(natsMock, nats_core.WithLogger(logger))

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tc.ctxDone {
				cancel()
			}

			// when
			err := sut.Publish(ctx, subject, []byte("alert"))

			// then
			require.Equal(t, tc.expectedPublishCalls, len(natsMock.PublishCalls()))
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, subject, natsMock.PublishCalls()[0].Subj)
		})
	}
}

func TestPublishJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// given
		natsMock := &mocks.NatsConnectionMock{
			PublishFunc: func(_ string, _ []byte) error { return nil },
		}
		sut := nats_core.New(natsMock)

		// when
		err := sut.PublishJSON(context.Background(), subject, map[string]string{"txHash": "abc"})

		// then
		require.NoError(t, err)
		require.Len(t, natsMock.PublishCalls(), 1)

		var actual map[string]string
		require.NoError(t, json.Unmarshal(natsMock.PublishCalls()[0].Data, &actual))
		require.Equal(t, "abc", actual["txHash"])
	})

	t.Run("marshal error", func(t *testing.T) {
		// given
		natsMock := &mocks.NatsConnectionMock{}
		sut := nats_core.New(natsMock)

		// when
		err := sut.PublishJSON(context.Background(), subject, make(chan int))

		// then
		require.ErrorIs(t, err, nats_core.ErrFailedToMarshal)
		require.Empty(t, natsMock.PublishCalls())
	})
}

func TestShutdown(t *testing.T) {
	// given
	natsMock := &mocks.NatsConnectionMock{
		DrainFunc:  func() error { return errors.New("drain failed") },
		StatusFunc: func() nats.Status { return nats.CONNECTED },
	}
	sut := nats_core.New(natsMock)

	// when
	status := sut.Status()
	sut.Shutdown()

	// then
	require.Equal(t, nats.CONNECTED, status)
	require.Len(t, natsMock.DrainCalls(), 1)
}

package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry runs op with exponential backoff until it succeeds or a minute passes.
func Retry(op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = time.Second * 5
	bo.MaxElapsedTime = time.Minute
	if err := backoff.Retry(op, bo); err != nil {
		if bo.NextBackOff() == backoff.Stop {
			return fmt.Errorf("reached retry deadline: %w", err)
		}

		return err
	}

	return nil
}

// RunParallel runs test as a named subtest, in parallel if requested.
func RunParallel(t *testing.T, parallel bool, name string, test func(t *testing.T)) {
	t.Helper()

	t.Run(name, func(t *testing.T) {
		if parallel {
			t.Parallel()
		}

		test(t)
	})
}

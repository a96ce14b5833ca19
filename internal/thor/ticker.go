package thor

import (
	"context"
	"fmt"
	"time"
	"vearn/internal/txn"
)

// Ticker returns a fresh block ticker. Tickers are not shared between callers.
func (c *Client) Ticker() txn.Ticker {
	return &blockTicker{client: c}
}

// blockTicker polls the best block and resolves Next once the head moves past
// the block seen by the previous Next.
type blockTicker struct {
	client  *Client
	head    uint64
	started bool
}

func (t *blockTicker) Next(ctx context.Context) error {
	if !t.started {
		best, err := t.client.BestBlock(ctx)
		if err != nil {
			return fmt.Errorf("get best block: %w", err)
		}
		t.head = best.Number
		t.started = true
	}

	poll := time.NewTicker(t.client.pollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll.C:
		}

		best, err := t.client.BestBlock(ctx)
		if err != nil {
			return fmt.Errorf("get best block: %w", err)
		}
		if best.Number > t.head {
			t.head = best.Number
			return nil
		}
	}
}

package mempool

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
)

// ObservedClient wraps an Explorer with metrics instrumentation.
type ObservedClient struct {
	client  Explorer
	metrics ExplorerMetrics
}

// NewObservedClient constructs an instrumented explorer client.
func NewObservedClient(client Explorer, metrics ExplorerMetrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

// TipHash returns the current chain tip hash.
func (o *ObservedClient) TipHash(ctx context.Context) (hash chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_tip_hash", err, started)
	}()
	return o.client.TipHash(ctx)
}

// Block returns block details for hash.
func (o *ObservedClient) Block(ctx context.Context, hash chainhash.Hash) (block model.Block, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_block", err, started)
	}()
	return o.client.Block(ctx, hash)
}

// Prices returns the latest BTC exchange rates.
func (o *ObservedClient) Prices(ctx context.Context) (rates model.CurrencyRates, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("get_prices", err, started)
	}()
	return o.client.Prices(ctx)
}

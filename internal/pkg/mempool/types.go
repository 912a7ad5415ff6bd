package mempool

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Explorer is the set of explorer reads used by the earnings services.
	Explorer interface {
		TipHash(ctx context.Context) (chainhash.Hash, error)
		Block(ctx context.Context, hash chainhash.Hash) (model.Block, error)
		Prices(ctx context.Context) (model.CurrencyRates, error)
	}
	// ExplorerMetrics records metrics for explorer calls.
	ExplorerMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

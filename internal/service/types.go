package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource reads chain tip and block details from an explorer.
	BlockSource interface {
		TipHash(ctx context.Context) (chainhash.Hash, error)
		Block(ctx context.Context, hash chainhash.Hash) (model.Block, error)
	}
	// PriceSource reads BTC exchange rates from an explorer.
	PriceSource interface {
		Prices(ctx context.Context) (model.CurrencyRates, error)
	}
	NetworkServiceMetrics interface {
		ObserveDifficultyResolution(err error)
		ObserveEstimate(err error, hashrateTHs, btcPerDay float64, started time.Time)
	}
)

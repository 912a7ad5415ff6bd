package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/earnings"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// EarningsAPI is the lookup surface served over HTTP.
	EarningsAPI interface {
		Difficulty(ctx context.Context) (float64, error)
		RewardPerDay(ctx context.Context, hashrateTHs, difficulty *float64) (float64, error)
		RewardPerDayFiat(ctx context.Context, hashrateTHs *float64, currency string) (earnings.FiatEstimate, error)
		Prices(ctx context.Context) (earnings.CurrencyRates, error)
		USDPrice(ctx context.Context) (float64, error)
		LastBlocks(ctx context.Context) ([]earnings.Block, error)
	}
)

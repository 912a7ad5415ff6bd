package earnings

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Block is an explorer block as used for the reward average.
	Block = model.Block
	// CurrencyRates maps fiat codes to the price of one BTC.
	CurrencyRates = model.CurrencyRates

	NetworkService interface {
		NetworkDifficulty(ctx context.Context) (float64, error)
		EstimatedEarningsPerDay(ctx context.Context, opts ...service.EstimateOption) (float64, error)
		LastBlocks(ctx context.Context, n int) ([]model.Block, error)
	}
	PriceService interface {
		Prices(ctx context.Context) (model.CurrencyRates, error)
		Price(ctx context.Context, currency string) (float64, error)
	}
)

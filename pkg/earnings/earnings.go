// Package earnings estimates expected daily bitcoin mining earnings from
// public explorer data.
package earnings

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/estimator"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/pkg/mempool"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/service"
)

// DefaultHashrateTHs is the hashrate used when none is supplied.
const DefaultHashrateTHs = estimator.DefaultHashrateTHs

// Config describes the explorer used by a Client.
type Config struct {
	// ExplorerURL is the explorer host, mempool.space when empty.
	ExplorerURL string
	// Network is one of mainnet, testnet or signet. Empty means mainnet.
	Network   string
	UserAgent string
	Timeout   time.Duration
	// RPS caps explorer requests per second; zero disables the limit.
	RPS int
}

// FiatEstimate is a daily estimate converted to a fiat currency.
type FiatEstimate struct {
	Currency    string
	HashrateTHs float64
	BTCPerDay   float64
	Rate        float64
	FiatPerDay  float64
}

// Client exposes difficulty, reward and price lookups. A Client resolves the
// network difficulty once and reuses it, so long-lived callers should create
// a new Client when they want a fresh value.
type Client struct {
	network NetworkService
	prices  PriceService
	logger  *zap.Logger
}

// New builds a Client talking to the configured explorer.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	network := model.Network(cfg.Network)
	if network == "" {
		network = model.Mainnet
	}
	if !network.Valid() {
		return nil, errors.New("unsupported network " + cfg.Network)
	}

	explorer := mempool.NewObservedClient(mempool.New(mempool.Config{
		BaseURL:   cfg.ExplorerURL,
		Network:   network,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		RPS:       cfg.RPS,
	}), metrics.NewExplorerClient(network))

	logger = logger.With(zap.String("network", string(network)))
	networkSvc, err := service.NewNetworkService(explorer, metrics.NewNetworkService(network), logger.Named("networkService"))
	if err != nil {
		return nil, err
	}
	priceSvc, err := service.NewPriceService(explorer, logger.Named("priceService"))
	if err != nil {
		return nil, err
	}
	return newClient(networkSvc, priceSvc, logger), nil
}

func newClient(network NetworkService, prices PriceService, logger *zap.Logger) *Client {
	return &Client{network: network, prices: prices, logger: logger}
}

// Difficulty returns the current network difficulty.
func (c *Client) Difficulty(ctx context.Context) (float64, error) {
	d, err := c.network.NetworkDifficulty(ctx)
	if err != nil {
		c.logger.Error("failed to fetch difficulty", zap.Error(err))
		return 0, err
	}
	return d, nil
}

// RewardPerDay returns the expected BTC per day. A nil hashrateTHs means
// DefaultHashrateTHs; a non-nil difficulty replaces the network difficulty
// for this call only.
func (c *Client) RewardPerDay(ctx context.Context, hashrateTHs, difficulty *float64) (float64, error) {
	opts := make([]service.EstimateOption, 0, 2)
	if hashrateTHs != nil {
		opts = append(opts, service.WithHashrateTHs(*hashrateTHs))
	}
	if difficulty != nil {
		opts = append(opts, service.WithDifficulty(*difficulty))
	}

	btc, err := c.network.EstimatedEarningsPerDay(ctx, opts...)
	if err != nil {
		c.logger.Error("failed to fetch bitcoin per day", zap.Error(err))
		return 0, err
	}
	return btc, nil
}

// RewardPerDayFiat converts RewardPerDay into currency at the current rate.
func (c *Client) RewardPerDayFiat(ctx context.Context, hashrateTHs *float64, currency string) (FiatEstimate, error) {
	btc, err := c.RewardPerDay(ctx, hashrateTHs, nil)
	if err != nil {
		return FiatEstimate{}, err
	}
	rate, err := c.prices.Price(ctx, currency)
	if err != nil {
		c.logger.Error("failed to fetch bitcoin price", zap.String("currency", currency), zap.Error(err))
		return FiatEstimate{}, err
	}

	h := float64(DefaultHashrateTHs)
	if hashrateTHs != nil {
		h = *hashrateTHs
	}
	return FiatEstimate{
		Currency:    currency,
		HashrateTHs: h,
		BTCPerDay:   btc,
		Rate:        rate,
		FiatPerDay:  btc * rate,
	}, nil
}

// Prices returns the current BTC exchange rates.
func (c *Client) Prices(ctx context.Context) (CurrencyRates, error) {
	rates, err := c.prices.Prices(ctx)
	if err != nil {
		c.logger.Error("failed to fetch bitcoin prices", zap.Error(err))
		return CurrencyRates{}, err
	}
	return rates, nil
}

// USDPrice returns the USD price of one BTC.
func (c *Client) USDPrice(ctx context.Context) (float64, error) {
	usd, err := c.prices.Price(ctx, model.USD)
	if err != nil {
		c.logger.Error("failed to fetch bitcoin usd price", zap.Error(err))
		return 0, err
	}
	return usd, nil
}

// LastBlocks returns the blocks averaged by RewardPerDay, tip first.
func (c *Client) LastBlocks(ctx context.Context) ([]Block, error) {
	blocks, err := c.network.LastBlocks(ctx, estimator.WindowSize)
	if err != nil {
		c.logger.Error("failed to fetch recent blocks", zap.Error(err))
		return nil, err
	}
	return blocks, nil
}

package earnings

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/service"
)

// Rotating serves lookups from a Client that is replaced by Refresh, on every
// Run tick, and right after a call reports ErrDifficultyUnavailable. Long-lived
// servers use it so a transient explorer failure or a stale difficulty does
// not outlive the Client that saw it.
type Rotating struct {
	build   func() (*Client, error)
	current atomic.Pointer[Client]
	logger  *zap.Logger
}

// NewRotating builds the first Client from cfg.
func NewRotating(cfg Config, logger *zap.Logger) (*Rotating, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newRotating(func() (*Client, error) {
		return New(cfg, logger)
	}, logger)
}

func newRotating(build func() (*Client, error), logger *zap.Logger) (*Rotating, error) {
	c, err := build()
	if err != nil {
		return nil, err
	}
	r := &Rotating{build: build, logger: logger}
	r.current.Store(c)
	return r, nil
}

// Client returns the Client currently serving lookups.
func (r *Rotating) Client() *Client {
	return r.current.Load()
}

// Refresh replaces the current Client unconditionally.
func (r *Rotating) Refresh() error {
	c, err := r.build()
	if err != nil {
		r.logger.Error("failed to build earnings client", zap.Error(err))
		return err
	}
	r.current.Store(c)
	return nil
}

// Run refreshes the Client every interval until ctx is done.
func (r *Rotating) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}
	for {
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return err
		}
		if err := r.Refresh(); err == nil {
			r.logger.Debug("earnings client refreshed")
		}
	}
}

// replaceFailed swaps out used once its difficulty resolution has failed.
// Concurrent failures on the same Client swap it at most once.
func (r *Rotating) replaceFailed(used *Client, err error) {
	if !errors.Is(err, service.ErrDifficultyUnavailable) {
		return
	}
	fresh, buildErr := r.build()
	if buildErr != nil {
		r.logger.Error("failed to build earnings client", zap.Error(buildErr))
		return
	}
	if r.current.CompareAndSwap(used, fresh) {
		r.logger.Warn("replaced earnings client after difficulty failure", zap.Error(err))
	}
}

// Difficulty returns the current network difficulty.
func (r *Rotating) Difficulty(ctx context.Context) (float64, error) {
	c := r.current.Load()
	d, err := c.Difficulty(ctx)
	r.replaceFailed(c, err)
	return d, err
}

// RewardPerDay returns the expected BTC per day.
func (r *Rotating) RewardPerDay(ctx context.Context, hashrateTHs, difficulty *float64) (float64, error) {
	c := r.current.Load()
	btc, err := c.RewardPerDay(ctx, hashrateTHs, difficulty)
	r.replaceFailed(c, err)
	return btc, err
}

// RewardPerDayFiat converts RewardPerDay into currency.
func (r *Rotating) RewardPerDayFiat(ctx context.Context, hashrateTHs *float64, currency string) (FiatEstimate, error) {
	c := r.current.Load()
	est, err := c.RewardPerDayFiat(ctx, hashrateTHs, currency)
	r.replaceFailed(c, err)
	return est, err
}

// Prices returns the current BTC exchange rates.
func (r *Rotating) Prices(ctx context.Context) (CurrencyRates, error) {
	return r.current.Load().Prices(ctx)
}

// USDPrice returns the USD price of one BTC.
func (r *Rotating) USDPrice(ctx context.Context) (float64, error) {
	return r.current.Load().USDPrice(ctx)
}

// LastBlocks returns the blocks averaged by RewardPerDay, tip first.
func (r *Rotating) LastBlocks(ctx context.Context) ([]Block, error) {
	return r.current.Load().LastBlocks(ctx)
}

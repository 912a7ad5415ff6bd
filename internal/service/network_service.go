// Package service implements the network and price services behind the
// earnings estimate.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/estimator"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/safe"
)

// EstimateOption customizes a single EstimatedEarningsPerDay call.
type EstimateOption func(*EstimateParams)

// EstimateParams holds the per-call inputs of an estimate.
type EstimateParams struct {
	HashrateTHs float64
	// Difficulty overrides the network difficulty when non-nil.
	Difficulty *float64
}

// NewEstimateParams applies opts over the defaults.
func NewEstimateParams(opts ...EstimateOption) EstimateParams {
	p := EstimateParams{HashrateTHs: estimator.DefaultHashrateTHs}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithHashrateTHs sets the miner hashrate in TH/s.
func WithHashrateTHs(h float64) EstimateOption {
	return func(p *EstimateParams) {
		p.HashrateTHs = h
	}
}

// WithDifficulty replaces the network difficulty for this call only.
func WithDifficulty(d float64) EstimateOption {
	return func(p *EstimateParams) {
		p.Difficulty = &d
	}
}

// NetworkService resolves network difficulty and recent block rewards.
type NetworkService struct {
	source  BlockSource
	metrics NetworkServiceMetrics
	logger  *zap.Logger

	difficultyOnce sync.Once
	difficultyDone chan struct{}
	difficulty     float64
	difficultyErr  error
}

// NewNetworkService builds a NetworkService. Difficulty is resolved lazily on
// first use and kept for the lifetime of the instance.
func NewNetworkService(source BlockSource, metrics NetworkServiceMetrics, logger *zap.Logger) (*NetworkService, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if metrics == nil {
		return nil, errors.New("network service metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NetworkService{
		source:         source,
		metrics:        metrics,
		logger:         logger,
		difficultyDone: make(chan struct{}),
	}, nil
}

// NetworkDifficulty returns the difficulty of the chain tip seen on first use.
// Concurrent first callers share one resolution. A failed resolution is final
// for this instance and is reported as ErrDifficultyUnavailable.
func (s *NetworkService) NetworkDifficulty(ctx context.Context) (float64, error) {
	s.difficultyOnce.Do(func() {
		// Detached so a canceled first caller does not fail the shared result.
		go s.resolveDifficulty(context.WithoutCancel(ctx))
	})

	select {
	case <-s.difficultyDone:
	default:
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-s.difficultyDone:
		}
	}

	if s.difficultyErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrDifficultyUnavailable, s.difficultyErr)
	}
	return s.difficulty, nil
}

func (s *NetworkService) resolveDifficulty(ctx context.Context) {
	defer close(s.difficultyDone)

	difficulty, err := s.tipDifficulty(ctx)
	s.metrics.ObserveDifficultyResolution(err)
	if err != nil {
		s.logger.Error("failed to initialize network difficulty", zap.Error(err))
		s.difficultyErr = err
		return
	}

	s.logger.Info("network difficulty initialized", zap.Float64("difficulty", difficulty))
	s.difficulty = difficulty
}

func (s *NetworkService) tipDifficulty(ctx context.Context) (float64, error) {
	tip, err := s.source.TipHash(ctx)
	if err != nil {
		return 0, fmt.Errorf("get tip hash: %w", err)
	}
	block, err := s.source.Block(ctx, tip)
	if err != nil {
		return 0, fmt.Errorf("get tip block %s: %w", tip, err)
	}
	difficulty, err := safe.Positive(block.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("tip block %s difficulty: %w", tip, err)
	}
	return difficulty, nil
}

// EstimatedEarningsPerDay returns the expected BTC mined per day at the given
// hashrate (100 TH/s by default), averaging the reward of the last eight blocks.
func (s *NetworkService) EstimatedEarningsPerDay(ctx context.Context, opts ...EstimateOption) (btcPerDay float64, err error) {
	p := NewEstimateParams(opts...)

	started := time.Now()
	defer func() {
		s.metrics.ObserveEstimate(err, p.HashrateTHs, btcPerDay, started)
	}()

	hashrate, err := safe.NonNegative(p.HashrateTHs)
	if err != nil {
		s.logger.Warn("rejecting hashrate", zap.Float64("hashrate_ths", p.HashrateTHs), zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrInvalidHashrate, err)
	}

	in := model.EstimationInputs{HashrateTHs: hashrate}
	var networkDifficulty float64
	if p.Difficulty != nil {
		override, err := safe.Positive(*p.Difficulty)
		if err != nil {
			s.logger.Warn("rejecting difficulty override", zap.Float64("difficulty", *p.Difficulty), zap.Error(err))
			return 0, fmt.Errorf("%w: %w", ErrInvalidDifficulty, err)
		}
		in.DifficultyOverride = &override
	} else {
		networkDifficulty, err = s.NetworkDifficulty(ctx)
		if err != nil {
			s.logger.Error("network difficulty is not available", zap.Error(err))
			return 0, err
		}
	}

	in.Blocks, err = s.LastBlocks(ctx, estimator.WindowSize)
	if err != nil {
		return 0, err
	}
	btcPerDay, err = estimator.EstimateInputs(in, networkDifficulty)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("estimated daily earnings",
		zap.Float64("hashrate_ths", hashrate),
		zap.Float64("network_difficulty", networkDifficulty),
		zap.Bool("difficulty_override", in.DifficultyOverride != nil),
		zap.Float64("btc_per_day", btcPerDay),
	)
	return btcPerDay, nil
}

// LastBlocks walks n blocks back from the chain tip following previous-block
// links. Any failed fetch fails the whole walk.
func (s *NetworkService) LastBlocks(ctx context.Context, n int) ([]model.Block, error) {
	if n <= 0 {
		return nil, fmt.Errorf("block window must be positive, got %d", n)
	}

	hash, err := s.source.TipHash(ctx)
	if err != nil {
		s.logger.Error("failed to fetch tip hash", zap.Error(err))
		return nil, fmt.Errorf("get tip hash: %w", err)
	}

	blocks := make([]model.Block, 0, n)
	seen := make(map[chainhash.Hash]struct{}, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := seen[hash]; ok {
			s.logger.Error("block walk revisited a hash", zap.Stringer("hash", hash), zap.Int("index", i))
			return nil, fmt.Errorf("%w: block %s repeated at position %d", ErrBrokenChain, hash, i+1)
		}
		seen[hash] = struct{}{}

		block, err := s.source.Block(ctx, hash)
		if err != nil {
			s.logger.Error("failed to fetch block", zap.Stringer("hash", hash), zap.Int("index", i), zap.Error(err))
			return nil, fmt.Errorf("fetch block %d of %d (%s): %w", i+1, n, hash, err)
		}
		if block.Hash != hash {
			s.logger.Error("explorer returned a different block", zap.Stringer("requested", hash), zap.Stringer("got", block.Hash))
			return nil, fmt.Errorf("%w: requested %s, got %s", ErrBrokenChain, hash, block.Hash)
		}
		blocks = append(blocks, block)

		if i < n-1 && block.IsGenesis() {
			s.logger.Error("reached genesis before filling block window", zap.Int("blocks", len(blocks)), zap.Int("window", n))
			return nil, fmt.Errorf("%w: reached genesis after %d of %d blocks", ErrBrokenChain, len(blocks), n)
		}
		hash = block.PreviousHash
	}

	return blocks, nil
}

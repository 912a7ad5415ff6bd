package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
)

// PriceService fetches BTC exchange rates.
type PriceService struct {
	source PriceSource
	logger *zap.Logger
}

// NewPriceService builds a PriceService.
func NewPriceService(source PriceSource, logger *zap.Logger) (*PriceService, error) {
	if source == nil {
		return nil, errors.New("price source is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceService{source: source, logger: logger}, nil
}

// Prices returns the full currency rate mapping. A payload without a USD rate
// is rejected.
func (s *PriceService) Prices(ctx context.Context) (model.CurrencyRates, error) {
	rates, err := s.source.Prices(ctx)
	if err != nil {
		s.logger.Error("failed to fetch bitcoin price", zap.Error(err))
		return model.CurrencyRates{}, fmt.Errorf("fetch bitcoin prices: %w", err)
	}
	if _, err := rates.USD(); err != nil {
		s.logger.Error("price payload has no USD rate", zap.Int("rates", len(rates.Rates)))
		return model.CurrencyRates{}, fmt.Errorf("%w: %w", ErrMalformedPrices, err)
	}
	return rates, nil
}

// USDPrice returns the USD price of one BTC.
func (s *PriceService) USDPrice(ctx context.Context) (float64, error) {
	return s.Price(ctx, model.USD)
}

// Price returns the price of one BTC in currency.
func (s *PriceService) Price(ctx context.Context, currency string) (float64, error) {
	rates, err := s.Prices(ctx)
	if err != nil {
		return 0, err
	}
	rate, err := rates.Rate(currency)
	if err != nil {
		s.logger.Error("currency rate not found", zap.String("currency", currency))
		return 0, err
	}
	return rate, nil
}

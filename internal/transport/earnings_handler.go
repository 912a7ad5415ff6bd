// Package transport exposes the earnings lookups over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/earnings"
)

type (
	errorResponse struct {
		Error string `json:"error"`
	}
	healthResponse struct {
		Status string `json:"status"`
	}
	difficultyResponse struct {
		Difficulty float64 `json:"difficulty"`
	}
	rewardResponse struct {
		HashrateTHs float64  `json:"hashrate_ths"`
		Difficulty  *float64 `json:"difficulty,omitempty"`
		BTCPerDay   float64  `json:"btc_per_day"`
	}
	fiatRewardResponse struct {
		HashrateTHs float64 `json:"hashrate_ths"`
		Currency    string  `json:"currency"`
		BTCPerDay   float64 `json:"btc_per_day"`
		Rate        float64 `json:"rate"`
		FiatPerDay  float64 `json:"fiat_per_day"`
	}
	pricesResponse struct {
		Time  time.Time          `json:"time"`
		Rates map[string]float64 `json:"rates"`
	}
	usdPriceResponse struct {
		USD float64 `json:"usd"`
	}
	blockResponse struct {
		Hash         string    `json:"hash"`
		Height       uint64    `json:"height"`
		Timestamp    time.Time `json:"timestamp"`
		Difficulty   float64   `json:"difficulty"`
		RewardSats   int64     `json:"reward_sats"`
		RewardBTC    float64   `json:"reward_btc"`
		PreviousHash string    `json:"previous_hash"`
	}
)

// EarningsHandler serves difficulty, reward and price lookups as JSON.
type EarningsHandler struct {
	api    EarningsAPI
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewEarningsHandler returns an EarningsHandler instance.
func NewEarningsHandler(api EarningsAPI, logger *zap.Logger) *EarningsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &EarningsHandler{api: api, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /health", h.health)
	h.mux.HandleFunc("GET /v1/difficulty", h.difficulty)
	h.mux.HandleFunc("GET /v1/reward-per-day", h.rewardPerDay)
	h.mux.HandleFunc("GET /v1/reward-per-day/fiat", h.rewardPerDayFiat)
	h.mux.HandleFunc("GET /v1/prices", h.prices)
	h.mux.HandleFunc("GET /v1/prices/usd", h.usdPrice)
	h.mux.HandleFunc("GET /v1/blocks", h.blocks)
	return h
}

// ServeHTTP implements http.Handler.
func (h *EarningsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *EarningsHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (h *EarningsHandler) difficulty(w http.ResponseWriter, r *http.Request) {
	d, err := h.api.Difficulty(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, difficultyResponse{Difficulty: d})
}

func (h *EarningsHandler) rewardPerDay(w http.ResponseWriter, r *http.Request) {
	hashrate, err := optionalFloat(r, "hashrate")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	difficulty, err := optionalFloat(r, "difficulty")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}

	btc, err := h.api.RewardPerDay(r.Context(), hashrate, difficulty)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rewardResponse{
		HashrateTHs: valueOr(hashrate, earnings.DefaultHashrateTHs),
		Difficulty:  difficulty,
		BTCPerDay:   btc,
	})
}

func (h *EarningsHandler) rewardPerDayFiat(w http.ResponseWriter, r *http.Request) {
	hashrate, err := optionalFloat(r, "hashrate")
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	currency := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currency")))
	if currency == "" {
		currency = model.USD
	}

	est, err := h.api.RewardPerDayFiat(r.Context(), hashrate, currency)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fiatRewardResponse{
		HashrateTHs: est.HashrateTHs,
		Currency:    est.Currency,
		BTCPerDay:   est.BTCPerDay,
		Rate:        est.Rate,
		FiatPerDay:  est.FiatPerDay,
	})
}

func (h *EarningsHandler) prices(w http.ResponseWriter, r *http.Request) {
	rates, err := h.api.Prices(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pricesResponse{Time: rates.Time, Rates: rates.Rates})
}

func (h *EarningsHandler) usdPrice(w http.ResponseWriter, r *http.Request) {
	usd, err := h.api.USDPrice(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, usdPriceResponse{USD: usd})
}

func (h *EarningsHandler) blocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.api.LastBlocks(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]blockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp = append(resp, blockResponse{
			Hash:         b.Hash.String(),
			Height:       b.Height,
			Timestamp:    b.Timestamp,
			Difficulty:   b.Difficulty,
			RewardSats:   int64(b.Reward),
			RewardBTC:    b.Reward.ToBTC(),
			PreviousHash: b.PreviousHash.String(),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *EarningsHandler) writeBadRequest(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *EarningsHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, service.ErrMalformedPrices):
		// wraps ErrMissingRate when the explorer payload lacks USD
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrInvalidHashrate),
		errors.Is(err, service.ErrInvalidDifficulty),
		errors.Is(err, model.ErrMissingRate):
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("earnings lookup failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *EarningsHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func optionalFloat(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, raw)
	}
	return &v, nil
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

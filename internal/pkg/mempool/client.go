// Package mempool implements a client for mempool.space compatible explorer APIs.
package mempool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
)

// DefaultBaseURL is the public mempool.space host.
const DefaultBaseURL = "https://mempool.space"

const (
	maxTipBodyBytes   = 1 << 10
	maxErrorBodyBytes = 512
)

// ErrMalformedResponse is returned when an explorer payload cannot be decoded
// into the expected shape.
var ErrMalformedResponse = errors.New("malformed explorer response")

// StatusError reports a non-success HTTP status from the explorer.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("mempool: %s: http %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("mempool: %s: http %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Config describes how to reach the explorer.
type Config struct {
	BaseURL   string
	Network   model.Network
	UserAgent string
	Timeout   time.Duration
	// RPS caps outgoing requests per second; zero or less disables the limit.
	RPS int
}

// Client issues GET requests against the explorer REST API.
type Client struct {
	apiURL    string
	userAgent string
	http      *http.Client
	rl        ratelimit.Limiter
}

// New constructs a Client.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		apiURL:    baseURL + cfg.Network.PathPrefix() + "/api",
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: timeout, Transport: tr},
		rl:        rl,
	}
}

// TipHash returns the hash of the current chain tip.
func (c *Client) TipHash(ctx context.Context) (chainhash.Hash, error) {
	resp, err := c.get(ctx, "get_tip_hash", "/blocks/tip/hash")
	if err != nil {
		return chainhash.Hash{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTipBodyBytes))
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("mempool: read tip hash: %w", err)
	}
	hash, err := parseHash(strings.TrimSpace(string(body)))
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%w: tip hash: %w", ErrMalformedResponse, err)
	}
	return hash, nil
}

// Block returns block details, including the total reward, for hash.
func (c *Client) Block(ctx context.Context, hash chainhash.Hash) (model.Block, error) {
	resp, err := c.get(ctx, "get_block", "/v1/block/"+hash.String())
	if err != nil {
		return model.Block{}, err
	}
	defer resp.Body.Close()

	var br blockResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return model.Block{}, fmt.Errorf("%w: block %s: %w", ErrMalformedResponse, hash, err)
	}
	block, err := br.toModel(hash)
	if err != nil {
		return model.Block{}, fmt.Errorf("%w: block %s: %w", ErrMalformedResponse, hash, err)
	}
	return block, nil
}

// Prices returns the latest BTC exchange rates.
func (c *Client) Prices(ctx context.Context) (model.CurrencyRates, error) {
	resp, err := c.get(ctx, "get_prices", "/v1/prices")
	if err != nil {
		return model.CurrencyRates{}, err
	}
	defer resp.Body.Close()

	var raw map[string]*float64
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return model.CurrencyRates{}, fmt.Errorf("%w: prices: %w", ErrMalformedResponse, err)
	}
	rates, err := toCurrencyRates(raw)
	if err != nil {
		return model.CurrencyRates{}, fmt.Errorf("%w: prices: %w", ErrMalformedResponse, err)
	}
	return rates, nil
}

func (c *Client) get(ctx context.Context, operation, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("mempool: %s: %w", operation, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.rl.Take()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mempool: %s: %w", operation, err)
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}

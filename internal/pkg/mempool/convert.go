package mempool

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/safe"
)

const pricesTimeKey = "time"

type blockResponse struct {
	ID                string       `json:"id"`
	Height            int64        `json:"height"`
	Timestamp         int64        `json:"timestamp"`
	Difficulty        float64      `json:"difficulty"`
	PreviousBlockHash string       `json:"previousblockhash"`
	Extras            *blockExtras `json:"extras"`
}

type blockExtras struct {
	Reward *int64 `json:"reward"`
}

func (r blockResponse) toModel(requested chainhash.Hash) (model.Block, error) {
	id, err := parseHash(r.ID)
	if err != nil {
		return model.Block{}, fmt.Errorf("id: %w", err)
	}
	if id != requested {
		return model.Block{}, fmt.Errorf("id %s does not match requested hash", id)
	}

	var prev chainhash.Hash
	if r.PreviousBlockHash != "" {
		if prev, err = parseHash(r.PreviousBlockHash); err != nil {
			return model.Block{}, fmt.Errorf("previousblockhash: %w", err)
		}
	}

	height, err := safe.Uint64(r.Height)
	if err != nil {
		return model.Block{}, fmt.Errorf("height: %w", err)
	}
	difficulty, err := safe.Positive(r.Difficulty)
	if err != nil {
		return model.Block{}, fmt.Errorf("difficulty: %w", err)
	}
	if r.Extras == nil || r.Extras.Reward == nil {
		return model.Block{}, errors.New("extras.reward missing")
	}
	if _, err := safe.Uint64(*r.Extras.Reward); err != nil {
		return model.Block{}, fmt.Errorf("extras.reward: %w", err)
	}

	return model.Block{
		Hash:         id,
		Height:       height,
		Timestamp:    time.Unix(r.Timestamp, 0).UTC(),
		Difficulty:   difficulty,
		Reward:       btcutil.Amount(*r.Extras.Reward),
		PreviousHash: prev,
	}, nil
}

func toCurrencyRates(raw map[string]*float64) (model.CurrencyRates, error) {
	rates := model.CurrencyRates{Rates: make(map[string]float64, len(raw))}
	for code, v := range raw {
		if code == pricesTimeKey {
			if v != nil {
				rates.Time = time.Unix(int64(*v), 0).UTC()
			}
			continue
		}
		if v == nil {
			return model.CurrencyRates{}, fmt.Errorf("rate %s is null", code)
		}
		rate, err := safe.Positive(*v)
		if err != nil {
			return model.CurrencyRates{}, fmt.Errorf("rate %s: %w", code, err)
		}
		rates.Rates[code] = rate
	}
	if len(rates.Rates) == 0 {
		return model.CurrencyRates{}, errors.New("no currency rates")
	}
	return rates, nil
}

func parseHash(s string) (chainhash.Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return chainhash.Hash{}, fmt.Errorf("hash %q has length %d, want %d", s, len(s), chainhash.MaxHashStringSize)
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return *h, nil
}

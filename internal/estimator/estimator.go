// Package estimator computes expected mining earnings from network statistics.
package estimator

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-earnings/pkg/safe"
)

const (
	// SecondsPerDay scales per-second expectations to a day.
	SecondsPerDay = 86_400
	// TerahashesToHashes converts TH/s to H/s.
	TerahashesToHashes = 1e12
	// DifficultyFactor is the expected number of hashes per unit of difficulty.
	DifficultyFactor = 1 << 32
	// DefaultHashrateTHs is used when the caller does not supply a hashrate.
	DefaultHashrateTHs = 100
	// WindowSize is the number of recent blocks averaged for the reward.
	WindowSize = 8
)

// ErrEmptyWindow is returned when averaging rewards over no blocks.
var ErrEmptyWindow = errors.New("empty block window")

// Estimate returns the expected BTC mined per day by hashrateTHs against the
// given network difficulty when each block pays avgRewardBTC.
func Estimate(hashrateTHs, difficulty, avgRewardBTC float64) float64 {
	hashrateHs := hashrateTHs * TerahashesToHashes
	return (hashrateHs * avgRewardBTC * SecondsPerDay) / (difficulty * DifficultyFactor)
}

// AverageRewardBTC returns the mean total reward of blocks in whole coins.
func AverageRewardBTC(blocks []model.Block) (float64, error) {
	if len(blocks) == 0 {
		return 0, ErrEmptyWindow
	}
	var sum btcutil.Amount
	for _, b := range blocks {
		sum += b.Reward
	}
	return sum.ToBTC() / float64(len(blocks)), nil
}

// EstimateInputs runs Estimate over a collected window. The override in in
// wins over networkDifficulty when set.
func EstimateInputs(in model.EstimationInputs, networkDifficulty float64) (float64, error) {
	difficulty := networkDifficulty
	if in.DifficultyOverride != nil {
		difficulty = *in.DifficultyOverride
	}
	difficulty, err := safe.Positive(difficulty)
	if err != nil {
		return 0, fmt.Errorf("difficulty: %w", err)
	}
	avgRewardBTC, err := AverageRewardBTC(in.Blocks)
	if err != nil {
		return 0, err
	}
	return Estimate(in.HashrateTHs, difficulty, avgRewardBTC), nil
}

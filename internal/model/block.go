// Package model defines domain models for mining earnings estimation.
package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Block describes the fields of an explorer block used for estimation.
type Block struct {
	Hash         chainhash.Hash
	Height       uint64
	Timestamp    time.Time
	Difficulty   float64
	Reward       btcutil.Amount
	PreviousHash chainhash.Hash
}

// IsGenesis reports whether the block has no predecessor.
func (b Block) IsGenesis() bool {
	return b.PreviousHash == (chainhash.Hash{})
}

// EstimationInputs bundles the parameters of a single earnings estimate.
type EstimationInputs struct {
	HashrateTHs        float64
	DifficultyOverride *float64
	Blocks             []Block
}

package service

import "errors"

var (
	// ErrDifficultyUnavailable is returned when the network difficulty could not be resolved.
	ErrDifficultyUnavailable = errors.New("network difficulty unavailable")
	// ErrInvalidHashrate is returned for negative or non-finite hashrates.
	ErrInvalidHashrate = errors.New("invalid hashrate")
	// ErrInvalidDifficulty is returned for a non-positive difficulty override.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrBrokenChain is returned when the block walk does not form a contiguous window.
	ErrBrokenChain = errors.New("broken block chain")
	// ErrMalformedPrices is returned when the price payload lacks the USD rate.
	ErrMalformedPrices = errors.New("malformed price payload")
)

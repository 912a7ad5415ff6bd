package model

// Network identifies the bitcoin network served by an explorer.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
)

// PathPrefix returns the explorer path segment for the network.
func (n Network) PathPrefix() string {
	switch n {
	case Testnet:
		return "/testnet"
	case Signet:
		return "/signet"
	default:
		return ""
	}
}

// Valid reports whether n is a known network.
func (n Network) Valid() bool {
	switch n {
	case Mainnet, Testnet, Signet:
		return true
	default:
		return false
	}
}

package chaincfg

import (
	"github.com/melvincarvalho/nomen/errors"
)

// Params defines the network-specific values the indexer needs. The index
// genesis height is the first block that can contain a name anchor; scanning
// below it is wasted work.
type Params struct {
	// Name is the canonical network name as used in configuration.
	Name string

	// GenesisIndexHeight is the height the indexer starts from when the
	// store is empty.
	GenesisIndexHeight uint64
}

// MainNetParams defines the network parameters for the main Bitcoin network.
var MainNetParams = Params{
	Name:               "bitcoin",
	GenesisIndexHeight: 790500,
}

// TestNet3Params defines the network parameters for the test Bitcoin network.
var TestNet3Params = Params{
	Name:               "testnet",
	GenesisIndexHeight: 0,
}

// SigNetParams defines the network parameters for the signet test network.
var SigNetParams = Params{
	Name:               "signet",
	GenesisIndexHeight: 143500,
}

// RegressionNetParams defines the network parameters for the regression test
// network.
var RegressionNetParams = Params{
	Name:               "regtest",
	GenesisIndexHeight: 0,
}

// GetChainParams returns the parameters for the named network.
func GetChainParams(network string) (*Params, error) {
	switch network {
	case "bitcoin", "mainnet":
		return &MainNetParams, nil
	case "testnet":
		return &TestNet3Params, nil
	case "signet":
		return &SigNetParams, nil
	case "regtest":
		return &RegressionNetParams, nil
	default:
		return nil, errors.NewConfigurationError("unknown network: %s", network)
	}
}

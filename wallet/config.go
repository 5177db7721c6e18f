package wallet

import (
	"github.com/btcsuite/btcd/chaincfg"
)

type WalletConfig struct {
	// The blockchain, btc, dash, etc
	Chain CoinType

	// Network parameters. Set mainnet, testnet using this.
	Params *chaincfg.Params

	// Store the seed in encrypted storage
	StoreEncSeed bool

	// Location of the data directory
	DataDir string

	// An implementation of the Datastore interface
	DB Datastore

	// If not testing do not overwrite existing wallet files
	Testing bool
}

package client

import (
	"net/url"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"golang.org/x/net/proxy"

	"github.com/dev-warrior777/go-recovery-client/recovery"
	"github.com/dev-warrior777/go-recovery-client/wallet"
)

const (
	appName = "gorec"

	// DefaultAddressCount is the number of addresses derived and looked
	// up per scan round.
	DefaultAddressCount = uint64(100)

	// DefaultMaxEmptyRounds is the number of consecutive empty rounds
	// after which a scan considers all used addresses found.
	DefaultMaxEmptyRounds = uint64(10)
)

type ClientConfig struct {
	// The blockchain, btc, dash, etc
	Chain wallet.CoinType

	// Network parameters.
	Params *chaincfg.Params

	// Store the seed in encrypted storage
	StoreEncSeed bool

	// The user-agent visible to the network
	UserAgent string

	// Location of the data directory
	DataDir string

	// An implementation of the Datastore interface
	DB wallet.Datastore

	// Root of the address usage api for the selected network.
	OracleAPI url.URL

	// A Tor proxy can be set here causing oracle lookups to use Tor.
	Proxy proxy.Dialer

	// Addresses per scan round.
	AddressCount uint64

	// Consecutive empty rounds before a scan stops.
	MaxEmptyRounds uint64

	// Highest index known used from a previous scan. Zero means take it
	// from the datastore.
	LastKnownIndex uint64

	// Concurrent scan workers.
	Workers int

	// If not testing do not overwrite existing wallet files
	Testing bool
}

func NewDefaultConfig() *ClientConfig {
	return &ClientConfig{
		Chain:          wallet.Bitcoin,
		Params:         &chaincfg.MainNetParams,
		UserAgent:      appName,
		DataDir:        btcutil.AppDataDir(appName, false),
		DB:             nil, // concrete impl
		AddressCount:   DefaultAddressCount,
		MaxEmptyRounds: DefaultMaxEmptyRounds,
		Workers:        recovery.DefaultWorkers,
	}
}

func (cc *ClientConfig) MakeWalletConfig() *wallet.WalletConfig {
	wc := wallet.WalletConfig{
		Chain:        cc.Chain,
		Params:       cc.Params,
		StoreEncSeed: cc.StoreEncSeed,
		DataDir:      cc.DataDir,
		DB:           cc.DB,
		Testing:      cc.Testing,
	}
	return &wc
}

// GetConfigPath returns the client data directory, making it if needed.
func GetConfigPath() (string, error) {
	appDir := btcutil.AppDataDir(appName, false)
	err := os.MkdirAll(appDir, os.ModeDir|0777)
	if err != nil {
		return "", err
	}
	return appDir, nil
}

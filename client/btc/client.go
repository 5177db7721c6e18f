package btc

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/dev-warrior777/go-recovery-client/client"
	"github.com/dev-warrior777/go-recovery-client/oracle"
	"github.com/dev-warrior777/go-recovery-client/wallet"
	"github.com/dev-warrior777/go-recovery-client/wallet/db"
	"github.com/dev-warrior777/go-recovery-client/wallet/wltbtc"
)

var ErrNoWallet error = errors.New("no wallet")
var ErrNoOracle error = errors.New("no usage oracle")

// BtcRecoveryClient
type BtcRecoveryClient struct {
	clientConfig *client.ClientConfig
	wallet       wallet.RecoveryWallet
	oracle       *oracle.Client
}

func NewBtcRecoveryClient(cfg *client.ClientConfig) *BtcRecoveryClient {
	return &BtcRecoveryClient{
		clientConfig: cfg,
		wallet:       nil,
		oracle:       nil,
	}
}

var _ = client.RecoveryClient(&BtcRecoveryClient{})

// makeDatastore selects the wallet datastore unless the config already
// carries one, which the tests do.
func (rc *BtcRecoveryClient) makeDatastore() error {
	cfg := rc.clientConfig
	if cfg.DB != nil {
		return nil
	}
	sqliteDatastore, err := db.Create(cfg.DataDir)
	if err != nil {
		return err
	}
	cfg.DB = sqliteDatastore
	return nil
}

func (rc *BtcRecoveryClient) makeOracle() *oracle.Client {
	cfg := rc.clientConfig
	api := cfg.OracleAPI.String()
	if cfg.Proxy != nil {
		return oracle.NewClient(api, cfg.Proxy)
	}
	return oracle.NewClient(api, nil)
}

// CreateWallet makes a new wallet with a new seed. The password is to encrypt
// stored xpub, xprv and other sensitive data.
func (rc *BtcRecoveryClient) CreateWallet(pw string) error {
	cfg := rc.clientConfig
	datadir := cfg.DataDir
	if _, err := os.Stat(path.Join(datadir, "recovery.db")); err == nil {
		if !cfg.Testing {
			return errors.New("recovery.db already exists")
		}
		fmt.Printf("a file recovery.db probably exists in the datadir: %s .. \n"+
			"test will overwrite\n", cfg.DataDir)
	}

	if err := rc.makeDatastore(); err != nil {
		return err
	}

	walletCfg := cfg.MakeWalletConfig()
	w, err := wltbtc.NewBtcRecoveryWallet(walletCfg, pw)
	if err != nil {
		return err
	}
	rc.wallet = w
	rc.oracle = rc.makeOracle()

	return nil
}

// RecreateWallet recreates a wallet from an existing mnemonic seed. The
// password is to encrypt the stored xpub, xprv and other sensitive data and
// can be different from the original wallet's password.
func (rc *BtcRecoveryClient) RecreateWallet(pw, mnemonic string) error {
	cfg := rc.clientConfig
	datadir := cfg.DataDir
	if _, err := os.Stat(path.Join(datadir, "recovery.db")); err == nil {
		if !cfg.Testing {
			return errors.New("recovery.db already exists")
		}
		fmt.Printf("a file recovery.db probably exists in the datadir: %s .. \n"+
			"test will overwrite\n", cfg.DataDir)
	}

	if err := rc.makeDatastore(); err != nil {
		return err
	}

	walletCfg := cfg.MakeWalletConfig()
	w, err := wltbtc.RecreateRecoveryWallet(walletCfg, pw, mnemonic)
	if err != nil {
		return err
	}
	rc.wallet = w
	rc.oracle = rc.makeOracle()

	return nil
}

// LoadWallet loads an existing wallet. The password is required to decrypt
// the stored xpub, xprv and other sensitive data.
func (rc *BtcRecoveryClient) LoadWallet(pw string) error {
	cfg := rc.clientConfig

	if err := rc.makeDatastore(); err != nil {
		return err
	}

	walletCfg := cfg.MakeWalletConfig()
	w, err := wltbtc.LoadBtcRecoveryWallet(walletCfg, pw)
	if err != nil {
		return err
	}
	rc.wallet = w
	rc.oracle = rc.makeOracle()

	return nil
}

func (rc *BtcRecoveryClient) GetConfig() *client.ClientConfig {
	return rc.clientConfig
}

func (rc *BtcRecoveryClient) GetWallet() wallet.RecoveryWallet {
	return rc.wallet
}

func (rc *BtcRecoveryClient) Close() {
	if rc.wallet != nil {
		rc.wallet.Close()
		rc.wallet = nil
	}
	rc.oracle = nil
}

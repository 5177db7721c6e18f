package wltbtc

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/tyler-smith/go-bip39"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

//////////////////////////////////////////////////////////////////////////////
//	RecoveryWallet

// BtcRecoveryWallet implements RecoveryWallet

var _ = wallet.RecoveryWallet(&BtcRecoveryWallet{})

const WalletVersion = "0.1.0"

var (
	ErrEmptyPassword   = errors.New("empty password")
	ErrIndexOutOfRange = errors.New("address index out of range")
)

type BtcRecoveryWallet struct {
	params *chaincfg.Params

	storageManager *StorageManager
	keyManager     *KeyManager

	creationDate time.Time

	running bool
}

// NewBtcRecoveryWallet makes a new wallet with a new seed. The mnemonic
// should be saved offline by the user.
func NewBtcRecoveryWallet(config *wallet.WalletConfig, pw string) (*BtcRecoveryWallet, error) {
	if pw == "" {
		return nil, ErrEmptyPassword
	}

	ent, err := bip39.NewEntropy(128)
	if err != nil {
		return nil, err
	}
	mnemonic, err := bip39.NewMnemonic(ent)
	if err != nil {
		return nil, err
	}
	seed := bip39.NewSeed(mnemonic, "")

	return makeBtcRecoveryWallet(config, pw, seed)
}

// RecreateRecoveryWallet makes a wallet from the mnemonic seed of an existing
// wallet. pw does not need to be the same as the old wallet
func RecreateRecoveryWallet(config *wallet.WalletConfig, pw, mnemonic string) (*BtcRecoveryWallet, error) {
	if pw == "" {
		return nil, ErrEmptyPassword
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, err
	}

	return makeBtcRecoveryWallet(config, pw, seed)
}

func LoadBtcRecoveryWallet(config *wallet.WalletConfig, pw string) (*BtcRecoveryWallet, error) {
	if pw == "" {
		return nil, ErrEmptyPassword
	}

	return loadBtcRecoveryWallet(config, pw)
}

func makeBtcRecoveryWallet(config *wallet.WalletConfig, pw string, seed []byte) (*BtcRecoveryWallet, error) {
	mPrivKey, err := hdkeychain.NewMaster(seed, config.Params)
	if err != nil {
		return nil, err
	}
	mPubKey, err := mPrivKey.Neuter()
	if err != nil {
		return nil, err
	}
	w := &BtcRecoveryWallet{
		params:       config.Params,
		creationDate: time.Now(),
	}

	sm := NewStorageManager(config.DB.Enc(), config.Params)
	sm.store.Version = "0.1"
	sm.store.Xprv = mPrivKey.String()
	sm.store.Xpub = mPubKey.String()
	sm.store.ShaPw = chainhash.HashB([]byte(pw))
	if config.StoreEncSeed {
		sm.store.Seed = make([]byte, len(seed))
		copy(sm.store.Seed, seed)
	}
	err = sm.Put(pw)
	if err != nil {
		return nil, err
	}
	w.storageManager = sm

	w.keyManager, err = NewKeyManager(w.params, mPrivKey)
	mPrivKey.Zero()
	mPubKey.Zero()
	if err != nil {
		return nil, err
	}

	err = config.DB.Cfg().PutCreationDate(w.creationDate)
	if err != nil {
		return nil, err
	}

	return w, nil
}

func loadBtcRecoveryWallet(config *wallet.WalletConfig, pw string) (*BtcRecoveryWallet, error) {
	sm := NewStorageManager(config.DB.Enc(), config.Params)

	err := sm.Get(pw)
	if err != nil {
		return nil, err
	}

	mPrivKey, err := hdkeychain.NewKeyFromString(sm.store.Xprv)
	if err != nil {
		return nil, err
	}

	w := &BtcRecoveryWallet{
		params:         config.Params,
		storageManager: sm,
	}

	w.keyManager, err = NewKeyManager(w.params, mPrivKey)
	mPrivKey.Zero()
	if err != nil {
		return nil, err
	}

	w.creationDate, err = config.DB.Cfg().GetCreationDate()
	if err != nil {
		return nil, err
	}

	return w, nil
}

//////////////////////////////////////////////////////////////////////////////////////////////////////////////////
//
// API
//
//////////////

// /////////////////////
// start interface impl.

func (w *BtcRecoveryWallet) Start() {
	w.running = true
}

func (w *BtcRecoveryWallet) CreationDate() time.Time {
	return w.creationDate
}

func (w *BtcRecoveryWallet) Params() *chaincfg.Params {
	return w.params
}

func (w *BtcRecoveryWallet) CurrencyCode() string {
	if w.params.Name == chaincfg.MainNetParams.Name {
		return "btc"
	} else {
		return "tbtc"
	}
}

// GetAddress derives the external chain address at index. It is used by the
// recovery scan and has no concept of gap-limit.
func (w *BtcRecoveryWallet) GetAddress(index uint64) (wallet.RecoveredAddress, error) {
	var recovered wallet.RecoveredAddress
	if index >= hdkeychain.HardenedKeyStart {
		return recovered, ErrIndexOutOfRange
	}
	key, err := w.keyManager.generateChildKey(wallet.EXTERNAL, uint32(index))
	if err != nil {
		return recovered, err
	}
	address, err := key.Address(w.params)
	key.Zero()
	if err != nil {
		return recovered, err
	}
	script, err := txscript.PayToAddrScript(address)
	if err != nil {
		return recovered, err
	}
	recovered = wallet.RecoveredAddress{
		Address:      address.String(),
		Index:        index,
		ScriptPubKey: hex.EncodeToString(script),
	}
	return recovered, nil
}

func (w *BtcRecoveryWallet) Close() {
	if w.running {
		// Any other tear down here .. long running threads, etc.
		w.running = false
	}
}

// end interface impl
/////////////////////

// GetKeyForIndex returns the private key for the external chain address at
// index. The wallet password is required.
func (w *BtcRecoveryWallet) GetKeyForIndex(pw string, index uint64) (*btcec.PrivateKey, error) {
	if ok := w.storageManager.IsValidPw(pw); !ok {
		return nil, errors.New("invalid password")
	}
	if index >= hdkeychain.HardenedKeyStart {
		return nil, ErrIndexOutOfRange
	}
	hdKey, err := w.keyManager.generateChildKey(wallet.EXTERNAL, uint32(index))
	if err != nil {
		return nil, err
	}
	privKey, err := hdKey.ECPrivKey()
	hdKey.Zero()
	if err != nil {
		return nil, err
	}
	return privKey, nil
}

// GetPrivKeyForIndex returns the WIF encoded private key for the external
// chain address at index.
func (w *BtcRecoveryWallet) GetPrivKeyForIndex(pw string, index uint64) (string, error) {
	privKey, err := w.GetKeyForIndex(pw, index)
	if err != nil {
		return "", err
	}
	wif, err := btcutil.NewWIF(privKey, w.params, true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

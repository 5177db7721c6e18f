package wltbtc

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

// KeyManager derives the wallet's child keys from the BIP44 account chains.
// Recovery has no gap-limit bookkeeping; any index in the space can be
// derived on demand.
type KeyManager struct {
	params *chaincfg.Params

	internalKey *hdkeychain.ExtendedKey
	externalKey *hdkeychain.ExtendedKey
}

func NewKeyManager(params *chaincfg.Params, masterPrivKey *hdkeychain.ExtendedKey) (*KeyManager, error) {
	internal, external, err := Bip44Derivation(masterPrivKey)
	if err != nil {
		return nil, err
	}
	km := &KeyManager{
		params:      params,
		internalKey: internal,
		externalKey: external,
	}
	return km, nil
}

// Bip44Derivation derives the internal and external chain keys for
// m/44'/0'/0'
func Bip44Derivation(masterPrivKey *hdkeychain.ExtendedKey) (internal, external *hdkeychain.ExtendedKey, err error) {
	// m/44'
	fourtyFour, err := masterPrivKey.Derive(hdkeychain.HardenedKeyStart + 44)
	if err != nil {
		return nil, nil, err
	}
	// m/44'/0'
	bitcoin, err := fourtyFour.Derive(hdkeychain.HardenedKeyStart + 0)
	if err != nil {
		return nil, nil, err
	}
	// m/44'/0'/0'
	account, err := bitcoin.Derive(hdkeychain.HardenedKeyStart + 0)
	if err != nil {
		return nil, nil, err
	}
	// m/44'/0'/0'/0
	external, err = account.Derive(0)
	if err != nil {
		return nil, nil, err
	}
	// m/44'/0'/0'/1
	internal, err = account.Derive(1)
	if err != nil {
		return nil, nil, err
	}
	return internal, external, nil
}

func (km *KeyManager) generateChildKey(purpose wallet.KeyPurpose, index uint32) (*hdkeychain.ExtendedKey, error) {
	switch purpose {
	case wallet.EXTERNAL:
		return km.externalKey.Derive(index)
	case wallet.INTERNAL:
		return km.internalKey.Derive(index)
	}
	return nil, errors.New("unknown key purpose")
}

func (km *KeyManager) Close() {
	km.externalKey.Zero()
	km.internalKey.Zero()
}

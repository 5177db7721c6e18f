package wltbtc

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

func testWalletConfig() *wallet.WalletConfig {
	return &wallet.WalletConfig{
		Chain:        wallet.Bitcoin,
		Params:       &chaincfg.RegressionNetParams,
		StoreEncSeed: true,
		DB:           NewMockDatastore(),
		Testing:      true,
	}
}

func TestRecreateRecoveryWallet(t *testing.T) {
	cfg := testWalletConfig()
	w, err := RecreateRecoveryWallet(cfg, "abc", test_mnemonic)
	if err != nil {
		t.Fatal(err)
	}
	if w.CurrencyCode() != "tbtc" {
		t.Error("wrong currency code for regtest")
	}

	// a second wallet from the same mnemonic derives the same addresses
	w2, err := RecreateRecoveryWallet(testWalletConfig(), "xyz", test_mnemonic)
	if err != nil {
		t.Fatal(err)
	}
	for _, index := range []uint64{0, 1, 19, 100} {
		a, err := w.GetAddress(index)
		if err != nil {
			t.Fatal(err)
		}
		b, err := w2.GetAddress(index)
		if err != nil {
			t.Fatal(err)
		}
		if !a.IsEqual(&b) {
			t.Errorf("address at index %d differs between wallets", index)
		}
		if a.Index != index {
			t.Errorf("address index %d reported as %d", index, a.Index)
		}
		if a.ScriptPubKey == "" {
			t.Errorf("address at index %d has no pkScript", index)
		}
	}
}

func TestRecreateRecoveryWalletBadMnemonic(t *testing.T) {
	cfg := testWalletConfig()
	_, err := RecreateRecoveryWallet(cfg, "abc", "jungle pair grass")
	if err == nil {
		t.Fatal("expected an invalid mnemonic error")
	}
}

func TestRecreateRecoveryWalletEmptyPassword(t *testing.T) {
	cfg := testWalletConfig()
	_, err := RecreateRecoveryWallet(cfg, "", test_mnemonic)
	if err != ErrEmptyPassword {
		t.Fatal("expected ErrEmptyPassword")
	}
}

func TestLoadRecoveryWallet(t *testing.T) {
	cfg := testWalletConfig()
	w, err := RecreateRecoveryWallet(cfg, "abc", test_mnemonic)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadBtcRecoveryWallet(cfg, "abc")
	if err != nil {
		t.Fatal(err)
	}

	a, err := w.GetAddress(7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := loaded.GetAddress(7)
	if err != nil {
		t.Fatal(err)
	}
	if !a.IsEqual(&b) {
		t.Error("loaded wallet derives different addresses")
	}

	_, err = LoadBtcRecoveryWallet(cfg, "wrong")
	if err == nil {
		t.Error("expected an error loading with a bad password")
	}
}

func TestGetAddressIndexOutOfRange(t *testing.T) {
	w := MockWallet("abc")
	_, err := w.GetAddress(uint64(hdkeychain.HardenedKeyStart))
	if err != ErrIndexOutOfRange {
		t.Error("expected ErrIndexOutOfRange")
	}
}

func TestGetPrivKeyForIndex(t *testing.T) {
	w := MockWallet("abc")
	wif, err := w.GetPrivKeyForIndex("abc", 0)
	if err != nil {
		t.Fatal(err)
	}
	if wif == "" {
		t.Fatal("empty WIF")
	}
	_, err = w.GetPrivKeyForIndex("wrong", 0)
	if err == nil {
		t.Error("expected an invalid password error")
	}
}

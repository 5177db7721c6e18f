package btc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/dev-warrior777/go-recovery-client/client"
	"github.com/dev-warrior777/go-recovery-client/wallet"
	"github.com/dev-warrior777/go-recovery-client/wallet/wltbtc"
)

var test_mnemonic = "jungle pair grass super coral bubble tomato sheriff pulp cancel luggage wagon"

func testClientConfig(t *testing.T, api string) *client.ClientConfig {
	apiURL, err := url.Parse(api)
	if err != nil {
		t.Fatal(err)
	}
	cfg := client.NewDefaultConfig()
	cfg.Chain = wallet.Bitcoin
	cfg.Params = &chaincfg.RegressionNetParams
	cfg.DataDir = t.TempDir()
	cfg.DB = wltbtc.NewMockDatastore()
	cfg.OracleAPI = *apiURL
	cfg.AddressCount = 20
	cfg.MaxEmptyRounds = 2
	cfg.Workers = 1
	cfg.Testing = true
	return cfg
}

type usedRequest struct {
	Addresses []string `json:"addresses"`
}

type usedResponse struct {
	Addresses []wallet.AddressUsage `json:"addresses"`
}

// A usage service for a wallet whose sixth address, derivation index 5, once
// sent coins. Addresses arrive in derivation order within a round.
func sentAtIndex5Server(t *testing.T) *httptest.Server {
	var firstRound = true
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/addresses/used" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req usedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
		}
		var resp usedResponse
		if firstRound && len(req.Addresses) > 5 {
			firstRound = false
			resp.Addresses = []wallet.AddressUsage{{
				Address:   req.Addresses[5],
				UsageType: wallet.UsageSent,
				Txid:      "beef",
			}}
		}
		json.NewEncoder(w).Encode(&resp)
	}))
}

func TestRecoverAddresses(t *testing.T) {
	svr := sentAtIndex5Server(t)
	defer svr.Close()

	cfg := testClientConfig(t, svr.URL)
	rc := NewBtcRecoveryClient(cfg)
	if err := rc.RecreateWallet("abc", test_mnemonic); err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	summary, err := rc.RecoverAddresses(0)
	if err != nil {
		t.Fatal(err)
	}

	// a final "sent" usage implies one speculative next address
	if summary.LastUsedIndex != 6 {
		t.Errorf("last used index %d, want 6", summary.LastUsedIndex)
	}
	if summary.TotalFound != 1 {
		t.Errorf("total found %d, want 1", summary.TotalFound)
	}
	if len(summary.Addresses) != 1 {
		t.Fatalf("got %d additional addresses, want 1", len(summary.Addresses))
	}
	next, err := rc.GetWallet().GetAddress(6)
	if err != nil {
		t.Fatal(err)
	}
	if !summary.Addresses[0].IsEqual(&next) {
		t.Errorf("additional address %+v is not the wallet's address at index 6", summary.Addresses[0])
	}

	// both the used address and the speculative one are in the datastore
	used, err := rc.GetWallet().GetAddress(5)
	if err != nil {
		t.Fatal(err)
	}
	stored, err := cfg.DB.Addrs().Get(used.Address)
	if err != nil {
		t.Fatal(err)
	}
	if stored.UsageType != wallet.UsageSent || stored.Txid != "beef" {
		t.Errorf("stored usage %+v", stored)
	}
	if _, err := cfg.DB.Addrs().Get(next.Address); err != nil {
		t.Error("speculative next address was not stored")
	}

	// a later scan resumes from the stored last used index
	idx, err := cfg.DB.Cfg().GetLastKnownIndex()
	if err != nil {
		t.Fatal(err)
	}
	if idx != 6 {
		t.Errorf("stored last known index %d, want 6", idx)
	}
}

func TestRecoverAddressesNoWallet(t *testing.T) {
	cfg := testClientConfig(t, "http://127.0.0.1:0")
	rc := NewBtcRecoveryClient(cfg)
	if _, err := rc.RecoverAddresses(0); err != ErrNoWallet {
		t.Fatalf("got %v, want ErrNoWallet", err)
	}
}

func TestRecoverAddressesServerDown(t *testing.T) {
	svr := sentAtIndex5Server(t)
	svr.Close()

	cfg := testClientConfig(t, svr.URL)
	rc := NewBtcRecoveryClient(cfg)
	if err := rc.RecreateWallet("abc", test_mnemonic); err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	if _, err := rc.RecoverAddresses(0); err == nil {
		t.Fatal("expected an error from an unreachable usage service")
	}
}

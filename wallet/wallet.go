// Package wallet provides the wallet side of the address recovery client:
// the recovered address types, the wallet and datastore interfaces, and the
// wallet configuration.
package wallet

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
)

type CoinType uint32

const (
	Bitcoin CoinType = iota
	// add as implemented
)

func (c CoinType) String() string {
	switch c {
	case Bitcoin:
		return "btc"
	default:
		return "unknown"
	}
}

type KeyPurpose int

const (
	EXTERNAL KeyPurpose = 0
	INTERNAL KeyPurpose = 1
)

type KeyPath struct {
	Purpose KeyPurpose
	Index   int
}

// Usage classifications reported by the usage oracle.
const (
	UsageReceived = "received"
	UsageSent     = "sent"
)

// RecoveredAddress is one deterministically derived wallet address together
// with its derivation index and pkScript. UsageType is filled in once the
// usage oracle reports the address as used.
type RecoveredAddress struct {
	Address      string `json:"address"`
	UsageType    string `json:"usage_type,omitempty"`
	Txid         string `json:"txid,omitempty"`
	Index        uint64 `json:"index"`
	ScriptPubKey string `json:"script_pubkey"`
}

func (ra *RecoveredAddress) IsEqual(alt *RecoveredAddress) bool {
	if alt == nil {
		return ra == nil
	}
	if ra.Address != alt.Address {
		return false
	}
	if ra.UsageType != alt.UsageType {
		return false
	}
	if ra.Txid != alt.Txid {
		return false
	}
	if ra.Index != alt.Index {
		return false
	}
	return ra.ScriptPubKey == alt.ScriptPubKey
}

// AddressUsage is the usage oracle's record for one used address.
type AddressUsage struct {
	Address   string `json:"address"`
	UsageType string `json:"usage_type"`
	Txid      string `json:"txid,omitempty"`
}

// RecoveryWallet is a wallet recreated from a seed that can derive any
// address in its index space for scanning.
type RecoveryWallet interface {
	// GetAddress derives the address at index. Derivation is deterministic
	// and has no concept of gap-limit; it is used by the recovery scan.
	GetAddress(index uint64) (RecoveredAddress, error)

	CurrencyCode() string

	Params() *chaincfg.Params

	CreationDate() time.Time

	Close()
}

type Datastore interface {
	Cfg() Cfg
	Enc() Enc
	Addrs() Addrs
}

type Cfg interface {
	PutCreationDate(date time.Time) error
	GetCreationDate() (time.Time, error)

	// The highest index a previous scan proved used. Rounds ending below
	// this watermark are never counted as empty by the next scan.
	PutLastKnownIndex(index uint64) error
	GetLastKnownIndex() (uint64, error)
}

// Enc is an encrypted key/value blob store for the wallet storage.
type Enc interface {
	PutEncrypted(b []byte, pw string) error
	GetDecrypted(pw string) ([]byte, error)
}

// Addrs stores the addresses found by recovery scans.
type Addrs interface {
	Put(addr *RecoveredAddress) error
	Get(address string) (*RecoveredAddress, error)
	GetAll() ([]*RecoveredAddress, error)
	LastIndex() (uint64, error)
}

package wltbtc

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/tyler-smith/go-bip39"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

var test_mnemonic = "jungle pair grass super coral bubble tomato sheriff pulp cancel luggage wagon"

func makeRegtestSeed() []byte {
	return bip39.NewSeed(test_mnemonic, "")
}

// A 'regtest' wallet
func MockWallet(pw string) *BtcRecoveryWallet {
	mockDb := MockDatastore{
		&mockConfig{creationDate: time.Now()},
		&mockStorage{},
		&mockAddrStore{addrs: make(map[string]*wallet.RecoveredAddress)},
	}

	seed := makeRegtestSeed()
	key, _ := hdkeychain.NewMaster(seed, &chaincfg.RegressionNetParams)
	km, _ := NewKeyManager(&chaincfg.RegressionNetParams, key)
	sm := NewStorageManager(mockDb.Enc(), &chaincfg.RegressionNetParams)

	sm.store.Xprv = "tprv8ZgxMBicQKsPfJU6JyiVdmFAtAzmWmTeEv85nTAHjLQyL35tdP2fAPWDSBBnFqGhhfTHVQMcnZhZDFkzFmCjm1bgf5UDwMAeFUWhJ9Dr8c4"
	sm.store.Xpub = "tpubD6NzVbkrYhZ4YmVtCdP63AuHTCWhg6eYpDis4yCb9cDNAXLfFmrFLt85cLFTwHiDJ9855NiE7cgQdiTGt5mb2RS9RfaxgVDkwBybJWm54Gh"
	sm.store.ShaPw = chainhash.HashB([]byte(pw))
	sm.store.Seed = []byte{0x01, 0x02, 0x03}

	w := &BtcRecoveryWallet{
		params:         &chaincfg.RegressionNetParams,
		storageManager: sm,
		keyManager:     km,
		creationDate:   time.Now(),
	}

	return w
}

type MockDatastore struct {
	cfg   wallet.Cfg
	enc   wallet.Enc
	addrs wallet.Addrs
}

func (m *MockDatastore) Cfg() wallet.Cfg {
	return m.cfg
}

func (m *MockDatastore) Enc() wallet.Enc {
	return m.enc
}

func (m *MockDatastore) Addrs() wallet.Addrs {
	return m.addrs
}

func NewMockDatastore() *MockDatastore {
	return &MockDatastore{
		&mockConfig{},
		&mockStorage{},
		&mockAddrStore{addrs: make(map[string]*wallet.RecoveredAddress)},
	}
}

type mockConfig struct {
	creationDate   time.Time
	lastKnownIndex uint64
}

func (mc *mockConfig) PutCreationDate(date time.Time) error {
	mc.creationDate = date
	return nil
}

func (mc *mockConfig) GetCreationDate() (time.Time, error) {
	return mc.creationDate, nil
}

func (mc *mockConfig) PutLastKnownIndex(index uint64) error {
	mc.lastKnownIndex = index
	return nil
}

func (mc *mockConfig) GetLastKnownIndex() (uint64, error) {
	return mc.lastKnownIndex, nil
}

// encrypted blob
type mockStorage struct {
	blob []byte
	pw   string
}

func (ms *mockStorage) PutEncrypted(b []byte, pw string) error {
	if pw == "" {
		return errors.New("no password")
	}
	ms.blob = make([]byte, len(b))
	copy(ms.blob, b)
	ms.pw = pw
	return nil
}

func (ms *mockStorage) GetDecrypted(pw string) ([]byte, error) {
	if ms.blob == nil {
		return nil, errors.New("no stored blob")
	}
	if pw != ms.pw {
		return nil, errors.New("bad password")
	}
	b := make([]byte, len(ms.blob))
	copy(b, ms.blob)
	return b, nil
}

type mockAddrStore struct {
	addrs map[string]*wallet.RecoveredAddress
}

func (m *mockAddrStore) Put(addr *wallet.RecoveredAddress) error {
	cp := *addr
	m.addrs[addr.Address] = &cp
	return nil
}

func (m *mockAddrStore) Get(address string) (*wallet.RecoveredAddress, error) {
	addr, ok := m.addrs[address]
	if !ok {
		return nil, errors.New("address not found")
	}
	return addr, nil
}

func (m *mockAddrStore) GetAll() ([]*wallet.RecoveredAddress, error) {
	all := []*wallet.RecoveredAddress{}
	for _, addr := range m.addrs {
		all = append(all, addr)
	}
	return all, nil
}

func (m *mockAddrStore) LastIndex() (uint64, error) {
	var last uint64
	for _, addr := range m.addrs {
		if addr.Index > last {
			last = addr.Index
		}
	}
	return last, nil
}

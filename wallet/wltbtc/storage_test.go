package wltbtc

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

func createStorageManager() *StorageManager {
	return NewStorageManager(&mockStorage{}, &chaincfg.RegressionNetParams)
}

var pw = "abc"
var xprv = "tprv8ZgxMBicQKsPfJU6JyiVdmFAtAzmWmTeEv85nTAHjLQyL35tdP2fAPWDSBBnFqGhhfTHVQMcnZhZDFkzFmCjm1bgf5UDwMAeFUWhJ9Dr8c4"
var xpub = "tpubD6NzVbkrYhZ4YmVtCdP63AuHTCWhg6eYpDis4yCb9cDNAXLfFmrFLt85cLFTwHiDJ9855NiE7cgQdiTGt5mb2RS9RfaxgVDkwBybJWm54Gh"
var shaPw = chainhash.HashB([]byte(pw))
var seed = []byte{0x01, 0x02, 0x03}

func TestStoreRetrieveBlob(t *testing.T) {
	sm := createStorageManager()
	var req = "ABC"
	err := sm.datastore.PutEncrypted([]byte(req), pw)
	if err != nil {
		t.Fatal(err)
	}

	ret, err := sm.datastore.GetDecrypted(pw)
	if err != nil {
		t.Fatal(err)
	}
	if string(ret) != req {
		t.Fatal("retrieved blob does not match stored blob")
	}
}

func TestStoreRetrieveEncryptedStore(t *testing.T) {
	sm := createStorageManager()

	sm.store = &Storage{
		Version: "0.1",
		Xprv:    xprv,
		Xpub:    xpub,
		ShaPw:   shaPw,
		Seed:    seed,
	}

	before := sm.store.String()

	err := sm.Put(pw)
	if err != nil {
		t.Fatal(err)
	}

	sm.store.blank()

	err = sm.Get(pw)
	if err != nil {
		t.Fatal(err)
	}

	after := sm.store.String()
	if before != after {
		t.Fatal("Storage before != Storage after")
	}

	if !bytes.Equal(sm.store.ShaPw, chainhash.HashB([]byte(pw))) {
		t.Fatal("pw check failed")
	}
}

func TestValidPw(t *testing.T) {
	sm := createStorageManager()

	sm.store = &Storage{
		Version: "0.1",
		Xprv:    xprv,
		Xpub:    xpub,
		ShaPw:   shaPw,
		Seed:    seed,
	}

	err := sm.Put(pw)
	if err != nil {
		t.Fatal(err)
	}

	sm.store.blank()

	if !sm.ValidPw(pw) {
		t.Fatal("invalid pw")
	}
	if sm.IsValidPw("wrong") {
		t.Fatal("accepted a bad pw")
	}
}

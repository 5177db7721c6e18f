package db

import (
	"database/sql"
	"sync"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

type AddrsDB struct {
	db   *sql.DB
	lock *sync.RWMutex
}

func (a *AddrsDB) Put(addr *wallet.RecoveredAddress) error {
	a.lock.Lock()
	defer a.lock.Unlock()
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("insert or replace into addresses(address, addrIndex, usageType, txid, scriptPubKey) values(?,?,?,?,?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	_, err = stmt.Exec(addr.Address, int64(addr.Index), addr.UsageType, addr.Txid, addr.ScriptPubKey)
	if err != nil {
		tx.Rollback()
		return err
	}
	tx.Commit()
	return nil
}

func (a *AddrsDB) Get(address string) (*wallet.RecoveredAddress, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	stmt, err := a.db.Prepare("select addrIndex, usageType, txid, scriptPubKey from addresses where address=?")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	var addrIndex int64
	var usageType string
	var txid string
	var scriptPubKey string
	err = stmt.QueryRow(address).Scan(&addrIndex, &usageType, &txid, &scriptPubKey)
	if err != nil {
		return nil, err
	}
	addr := &wallet.RecoveredAddress{
		Address:      address,
		UsageType:    usageType,
		Txid:         txid,
		Index:        uint64(addrIndex),
		ScriptPubKey: scriptPubKey,
	}
	return addr, nil
}

func (a *AddrsDB) GetAll() ([]*wallet.RecoveredAddress, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	var addrs []*wallet.RecoveredAddress
	stm := "select address, addrIndex, usageType, txid, scriptPubKey from addresses order by addrIndex"
	rows, err := a.db.Query(stm)
	if err != nil {
		return addrs, err
	}
	defer rows.Close()
	for rows.Next() {
		var address string
		var addrIndex int64
		var usageType string
		var txid string
		var scriptPubKey string
		if err := rows.Scan(&address, &addrIndex, &usageType, &txid, &scriptPubKey); err != nil {
			return addrs, err
		}
		addrs = append(addrs, &wallet.RecoveredAddress{
			Address:      address,
			UsageType:    usageType,
			Txid:         txid,
			Index:        uint64(addrIndex),
			ScriptPubKey: scriptPubKey,
		})
	}
	return addrs, nil
}

func (a *AddrsDB) LastIndex() (uint64, error) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	stmt, err := a.db.Prepare("select max(addrIndex) from addresses")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	var max sql.NullInt64
	err = stmt.QueryRow().Scan(&max)
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		// no addresses recovered yet
		return 0, nil
	}
	return uint64(max.Int64), nil
}

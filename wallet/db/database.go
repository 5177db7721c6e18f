package db

import (
	"database/sql"
	"path"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

// This database is an SqLite3 implementation of Datastore.
// A different database could be plugged in .. bbolt maybe
type SQLiteDatastore struct {
	cfg   wallet.Cfg
	enc   wallet.Enc
	addrs wallet.Addrs
	db    *sql.DB
	lock  *sync.RWMutex
}

func Create(repoPath string) (*SQLiteDatastore, error) {
	dbPath := path.Join(repoPath, "recovery.db")
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	l := new(sync.RWMutex)
	sqliteDB := &SQLiteDatastore{
		cfg: &CfgDB{
			db:   conn,
			lock: l,
		},
		enc: &EncDB{
			db:   conn,
			lock: l,
		},
		addrs: &AddrsDB{
			db:   conn,
			lock: l,
		},
		db:   conn,
		lock: l,
	}
	initDatabaseTables(conn)
	return sqliteDB, nil
}

func (db *SQLiteDatastore) Cfg() wallet.Cfg {
	return db.cfg
}
func (db *SQLiteDatastore) Enc() wallet.Enc {
	return db.enc
}
func (db *SQLiteDatastore) Addrs() wallet.Addrs {
	return db.addrs
}
func (db *SQLiteDatastore) Close() {
	db.db.Close()
}

func initDatabaseTables(db *sql.DB) error {
	var sqlStmt string
	sqlStmt = sqlStmt + `
	create table if not exists addresses (address text primary key not null, addrIndex integer, usageType text, txid text, scriptPubKey text);
	create table if not exists config(key text primary key not null, value blob);
	create table if not exists enc(key text primary key not null, value blob);
	`
	_, err := db.Exec(sqlStmt)
	if err != nil {
		return err
	}
	return nil
}

package db

import (
	"database/sql"
	"strconv"
	"sync"
	"time"
)

type CfgDB struct {
	db   *sql.DB
	lock *sync.RWMutex
}

func (s *CfgDB) GetCreationDate() (time.Time, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	var t time.Time
	stmt, err := s.db.Prepare("select value from config where key=?")
	if err != nil {
		return t, err
	}
	defer stmt.Close()
	var creationDate []byte
	err = stmt.QueryRow("creationDate").Scan(&creationDate)
	if err != nil {
		return t, err
	}
	return time.Parse(time.RFC3339, string(creationDate))
}

func (s *CfgDB) PutCreationDate(creationDate time.Time) error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("insert or replace into config(key, value) values(?,?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	_, err = stmt.Exec("creationDate", creationDate.Format(time.RFC3339))
	if err != nil {
		tx.Rollback()
		return err
	}
	tx.Commit()
	return nil
}

func (s *CfgDB) GetLastKnownIndex() (uint64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	stmt, err := s.db.Prepare("select value from config where key=?")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	var lastKnown []byte
	err = stmt.QueryRow("lastKnownIndex").Scan(&lastKnown)
	if err == sql.ErrNoRows {
		// no scan has completed yet
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(string(lastKnown), 10, 64)
}

func (s *CfgDB) PutLastKnownIndex(index uint64) error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("insert or replace into config(key, value) values(?,?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	_, err = stmt.Exec("lastKnownIndex", strconv.FormatUint(index, 10))
	if err != nil {
		tx.Rollback()
		return err
	}
	tx.Commit()
	return nil
}

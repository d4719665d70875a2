package db

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/likhonsheikh/tetheros-go/config"
)

var dataDb *sql.DB
var dataDBOnce = &sync.Once{}

// wallet_identity holds at most one row; the CHECK pins the primary key so a
// REPLACE always swaps both identity fields atomically.
const walletIdentitySchema = `
CREATE TABLE IF NOT EXISTS wallet_identity (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	wallet_id TEXT NOT NULL,
	wallet_address TEXT NOT NULL
)`

// Open opens the device-local sqlite database at path and ensures the
// identity schema exists.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	if _, err := conn.Exec(walletIdentitySchema); err != nil {
		return nil, err
	}
	return conn, nil
}

func GetDataDBConnection(cfg *config.Config) *sql.DB {
	dataDBOnce.Do(func() {
		var err error
		dataDb, err = Open(cfg.DBPath)
		if err != nil {
			log.Fatal(err)
		}
	})

	return dataDb
}

package record

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// file-backed stores use a single-connection WAL writer and a pooled
// read-only reader on the same sqlite file

func setupWriter(file string) (*sql.DB, error) {
	params := strings.Join([]string{
		"_journal_mode=WAL",
		"_synchronous=NORMAL",
		"_busy_timeout=5000",
		"_txlock=immediate",
	}, "&")
	sdb, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", file, params))
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", file, err)
	}
	sdb.SetMaxOpenConns(1)
	return sdb, nil
}

func setupReader(file string) (*sql.DB, error) {
	params := strings.Join([]string{
		"_busy_timeout=5000",
		"mode=ro",
	}, "&")
	sdb, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", file, params))
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", file, err)
	}
	return sdb, nil
}

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mxshs/betledger/src/domain"

	pq "github.com/lib/pq"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS bets (
    id              TEXT PRIMARY KEY,
    date            DATE NOT NULL,
    championship    TEXT NOT NULL,
    match           TEXT NOT NULL,
    home_team       TEXT NOT NULL,
    away_team       TEXT NOT NULL,
    market          TEXT NOT NULL,
    market_category TEXT NOT NULL,
    market_minutes  TEXT NOT NULL,
    selection       TEXT NOT NULL,
    odd             DOUBLE PRECISION NOT NULL,
    stake           DOUBLE PRECISION NOT NULL,
    status          TEXT NOT NULL,
    profit          DOUBLE PRECISION NOT NULL,
    cf              TEXT NOT NULL DEFAULT '',
    result_text     TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS bets_date_idx ON bets (date);`

const columns = `id, date, championship, match, home_team, away_team, market,
    market_category, market_minutes, selection, odd, stake, status, profit,
    cf, result_text, created_at`

type DB struct {
	db *sql.DB
}

func GetDB(dsn string) (*DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("[ERROR] Could not reach database: %w", err)
	}

	return &DB{db: conn}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) Migrate() error {
	_, err := db.db.Exec(schema)
	return err
}

// InsertBet stores one bet. A bet whose id is already stored is skipped and
// reported as not inserted.
func (db *DB) InsertBet(bet *domain.BetRecord) (bool, error) {
	_, err := db.db.Exec(
		`INSERT INTO bets (`+columns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`,
		bet.ID,
		bet.Date,
		bet.Championship,
		bet.Match,
		bet.HomeTeam,
		bet.AwayTeam,
		bet.Market,
		string(bet.MarketCategory),
		bet.MarketMinutes,
		bet.Selection,
		bet.Odd,
		bet.Stake,
		string(bet.Status),
		bet.Profit,
		bet.CF,
		bet.ResultText,
		bet.Timestamp,
	)
	if isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// InsertBets stores bets one by one and returns how many were new.
func (db *DB) InsertBets(bets []domain.BetRecord) (int, error) {
	inserted := 0

	for i := range bets {
		ok, err := db.InsertBet(&bets[i])
		if err != nil {
			return inserted, fmt.Errorf("[ERROR] Failed to insert bet %s: %w", bets[i].ID, err)
		}
		if ok {
			inserted++
		}
	}

	return inserted, nil
}

// ListBets returns every stored bet.
func (db *DB) ListBets() ([]domain.BetRecord, error) {
	rows, err := db.db.Query(`SELECT ` + columns + ` FROM bets ORDER BY date, created_at;`)
	if err != nil {
		return nil, err
	}
	return scanBets(rows)
}

// BetsOn returns the stored bets of the given days.
func (db *DB) BetsOn(dates []string) ([]domain.BetRecord, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	rows, err := db.db.Query(
		`SELECT `+columns+` FROM bets WHERE date = ANY($1::date[]) ORDER BY date, created_at;`,
		pq.Array(dates),
	)
	if err != nil {
		return nil, err
	}
	return scanBets(rows)
}

func scanBets(rows *sql.Rows) ([]domain.BetRecord, error) {
	defer rows.Close()

	var bets []domain.BetRecord

	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}

	return bets, rows.Err()
}

// DeleteByDate removes every bet of one day and returns how many went.
func (db *DB) DeleteByDate(date string) (int64, error) {
	res, err := db.db.Exec(`DELETE FROM bets WHERE date = $1;`, date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBet(s scanner) (domain.BetRecord, error) {
	var (
		bet      domain.BetRecord
		date     time.Time
		category string
		status   string
	)

	err := s.Scan(
		&bet.ID,
		&date,
		&bet.Championship,
		&bet.Match,
		&bet.HomeTeam,
		&bet.AwayTeam,
		&bet.Market,
		&category,
		&bet.MarketMinutes,
		&bet.Selection,
		&bet.Odd,
		&bet.Stake,
		&status,
		&bet.Profit,
		&bet.CF,
		&bet.ResultText,
		&bet.Timestamp,
	)
	if err != nil {
		return bet, err
	}

	bet.Date = date.Format("2006-01-02")
	bet.MarketCategory = domain.Room(category)
	bet.Status = domain.Status(status)

	return bet, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

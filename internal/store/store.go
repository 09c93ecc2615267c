// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/TFMV/uspsaddress/internal/matcher"
	"github.com/TFMV/uspsaddress/pkg/address"
)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Store persists normalized addresses keyed by fingerprint.
type Store struct {
	db DB
}

func New(db DB) *Store {
	return &Store{db: db}
}

// CreateRun registers a new load run and returns its id.
func (s *Store) CreateRun(ctx context.Context, description string) (int, error) {
	var runID int
	err := s.db.QueryRow(ctx,
		"INSERT INTO runs (description) VALUES ($1) RETURNING run_id",
		description,
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to create new run: %w", err)
	}
	return runID, nil
}

const insertAddress = `INSERT INTO addresses
	(run_id, street1, street2, city, state, zip,
	 norm_street1, norm_street2, norm_city, norm_state, norm_zip, fingerprint)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id`

func insertArgs(runID int, res matcher.Result) []any {
	raw, norm := res.Address.Fields(), res.Normalized.Fields()
	return []any{
		runID,
		raw[0], raw[1], raw[2], raw[3], raw[4],
		norm[0], norm[1], norm[2], norm[3], norm[4],
		res.Fingerprint,
	}
}

// Save stores one result and returns the id it was given.
func (s *Store) Save(ctx context.Context, runID int, res matcher.Result) (int, error) {
	var id int
	if err := s.db.QueryRow(ctx, insertAddress, insertArgs(runID, res)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert address: %w", err)
	}
	return id, nil
}

// SaveBatch stores results in one round trip and returns their ids in order.
func (s *Store) SaveBatch(ctx context.Context, runID int, results []matcher.Result) ([]int, error) {
	batch := &pgx.Batch{}
	for _, res := range results {
		batch.Queue(insertAddress, insertArgs(runID, res)...)
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	ids := make([]int, len(results))
	for i := range results {
		if err := br.QueryRow().Scan(&ids[i]); err != nil {
			return nil, fmt.Errorf("batch insert failed at row %d: %w", i, err)
		}
	}
	return ids, nil
}

// FindByFingerprint returns every stored address with the given fingerprint,
// oldest first.
func (s *Store) FindByFingerprint(ctx context.Context, fingerprint string) ([]matcher.Result, error) {
	rows, err := s.db.Query(ctx, `SELECT id, street1, street2, city, state, zip,
		norm_street1, norm_street2, norm_city, norm_state, norm_zip, fingerprint
		FROM addresses WHERE fingerprint = $1 ORDER BY id`, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var results []matcher.Result
	for rows.Next() {
		var (
			res       matcher.Result
			raw, norm [5]pgtype.Text
		)
		if err := rows.Scan(
			&res.ID,
			&raw[0], &raw[1], &raw[2], &raw[3], &raw[4],
			&norm[0], &norm[1], &norm[2], &norm[3], &norm[4],
			&res.Fingerprint,
		); err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		res.Address = address.FromFields(raw)
		res.Normalized = address.FromFields(norm)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

const pendingLoadQuery = "SELECT street1, street2, city, state, zip FROM address_load ORDER BY load_id"

// PendingLoad reads the raw addresses waiting in the load table. Records are
// numbered from 1 in the order they were copied in.
func (s *Store) PendingLoad(ctx context.Context) ([]matcher.Record, error) {
	rows, err := s.db.Query(ctx, pendingLoadQuery)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var records []matcher.Record
	for rows.Next() {
		var f [5]pgtype.Text
		if err := rows.Scan(&f[0], &f[1], &f[2], &f[3], &f[4]); err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		records = append(records, matcher.Record{
			ID:      len(records) + 1,
			Address: address.FromFields(f),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) TruncateLoad(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, "TRUNCATE TABLE address_load RESTART IDENTITY"); err != nil {
		return fmt.Errorf("failed to truncate address_load: %w", err)
	}
	return nil
}

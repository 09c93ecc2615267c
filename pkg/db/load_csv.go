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
// The above copyright notice shall be included in all
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

package db

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadTable receives raw addresses before they are normalized.
const LoadTable = "address_load"

var loadColumns = map[string]bool{
	"street1": true,
	"street2": true,
	"city":    true,
	"state":   true,
	"zip":     true,
}

// CsvSource implements the pgx.CopyFromSource interface. Empty cells are
// copied as NULL so the field is absent once read back.
type CsvSource struct {
	reader *csv.Reader
	cols   []string
	err    error
}

func (s *CsvSource) Next() bool {
	record, err := s.reader.Read()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.cols = record
	return true
}

func (s *CsvSource) Values() ([]interface{}, error) {
	values := make([]interface{}, len(s.cols))
	for i, col := range s.cols {
		if col == "" {
			values[i] = nil
			continue
		}
		values[i] = col
	}
	return values, nil
}

func (s *CsvSource) Err() error {
	return s.err
}

// LoadCSV copies the CSV read from r into the load table. The header row must
// name columns among street1, street2, city, state and zip.
func LoadCSV(ctx context.Context, pool *pgxpool.Pool, r io.Reader) (int64, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("error reading CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
		if !loadColumns[headers[i]] {
			return 0, fmt.Errorf("unexpected CSV column %q", h)
		}
	}

	copyCount, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{LoadTable},
		headers,
		&CsvSource{reader: reader},
	)
	if err != nil {
		return 0, fmt.Errorf("error copying data to database: %w", err)
	}

	return copyCount, nil
}

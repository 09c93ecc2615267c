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

package matcher

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TFMV/uspsaddress/pkg/address"
)

var setters = map[string]func(*address.Address, string){
	"street1": (*address.Address).SetStreet1,
	"street2": (*address.Address).SetStreet2,
	"city":    (*address.Address).SetCity,
	"state":   (*address.Address).SetState,
	"zip":     (*address.Address).SetZip,
}

// ReadRecords parses a CSV whose header names columns among id, street1,
// street2, city, state and zip. Empty cells leave the field absent. Rows
// without an id column are numbered from 1.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	idCol := -1
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		headers[i] = h
		if h == "id" {
			idCol = i
			continue
		}
		if _, ok := setters[h]; !ok {
			return nil, fmt.Errorf("unexpected CSV column %q", h)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV line %d: %w", line, err)
		}

		rec := Record{ID: len(records) + 1}
		for i, cell := range row {
			if i >= len(headers) || cell == "" {
				continue
			}
			if i == idCol {
				id, err := strconv.Atoi(strings.TrimSpace(cell))
				if err != nil {
					return nil, fmt.Errorf("invalid id %q on line %d: %w", cell, line, err)
				}
				rec.ID = id
				continue
			}
			setters[headers[i]](&rec.Address, cell)
		}
		records = append(records, rec)
	}
	return records, nil
}

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
	"context"
	"sync"

	"github.com/TFMV/uspsaddress/pkg/address"
	"github.com/TFMV/uspsaddress/standardizer"
)

// Record is a raw address with the caller's identifier.
type Record struct {
	ID      int             `json:"id"`
	Address address.Address `json:"address"`
}

// Result is a Record together with its normalized form and fingerprint.
type Result struct {
	Record
	Normalized  address.Address `json:"normalized"`
	Fingerprint string          `json:"fingerprint"`
}

// Normalize normalizes and fingerprints a single record.
func Normalize(rec Record) Result {
	norm := standardizer.Normalize(rec.Address)
	return Result{
		Record:      rec,
		Normalized:  norm,
		Fingerprint: standardizer.Hash(norm),
	}
}

// ProcessAddresses normalizes records with numWorkers goroutines. Results keep
// the input order. When ctx is cancelled the remaining records are skipped and
// ctx.Err() is returned with the results finished so far.
func ProcessAddresses(ctx context.Context, records []Record, numWorkers int) ([]Result, error) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	results := make([]Result, len(records))
	done := make([]bool, len(records))
	indexCh := make(chan int, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexCh {
				results[idx] = Normalize(records[idx])
				done[idx] = true
			}
		}()
	}

	var err error
enqueue:
	for i := range records {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break enqueue
		case indexCh <- i:
		}
	}
	close(indexCh)
	wg.Wait()

	if err != nil {
		finished := results[:0]
		for i, ok := range done {
			if ok {
				finished = append(finished, results[i])
			}
		}
		return finished, err
	}
	return results, nil
}

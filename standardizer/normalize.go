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

// Package standardizer normalizes US postal addresses and compares them by
// content fingerprint.
package standardizer

import (
	"github.com/TFMV/uspsaddress/internal/lexicon"
	"github.com/TFMV/uspsaddress/internal/standardizer"
	"github.com/TFMV/uspsaddress/pkg/address"
)

// Normalize returns a new Address with every present field reduced and
// unabbreviated. Absent fields stay absent. Normalize is idempotent.
func Normalize(addr address.Address) address.Address {
	var norm address.Address

	if addr.HasStreet1() {
		norm.SetStreet1(NormalizeStreet(addr.Street1()))
	}
	if addr.HasStreet2() {
		norm.SetStreet2(NormalizeStreet(addr.Street2()))
	}
	if addr.HasCity() {
		norm.SetCity(NormalizeCity(addr.City()))
	}
	if addr.HasState() {
		norm.SetState(NormalizeState(addr.State()))
	}
	if addr.HasZip() {
		norm.SetZip(NormalizeZip(addr.Zip()))
	}

	return norm
}

// NormalizeStreet folds number words and expands directions, street suffixes
// and secondary units, in that order.
//
//	NormalizeStreet("123 N. One Hundred and First St") // "123 north 101 street"
func NormalizeStreet(street string) string {
	street = standardizer.Reduce(street)
	street = standardizer.Number(street)
	street = standardizer.Unabbreviate(street, lexicon.Directions)
	street = standardizer.Unabbreviate(street, lexicon.Suffixes)
	street = standardizer.Unabbreviate(street, lexicon.Units)
	return street
}

// NormalizeCity lower-cases and trims a city name.
func NormalizeCity(city string) string {
	return standardizer.Reduce(city)
}

// NormalizeState expands a state code ("LA", "la.") to its name ("louisiana").
func NormalizeState(state string) string {
	return standardizer.Unabbreviate(standardizer.Reduce(state), lexicon.States)
}

// NormalizeZip keeps the five-character ZIP from a ZIP or ZIP+4.
func NormalizeZip(zip string) string {
	return standardizer.Zip(zip)
}

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

package standardizer

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/TFMV/uspsaddress/pkg/address"
)

// NormalizeFunc turns an address into its normalized form.
type NormalizeFunc func(address.Address) address.Address

// Comparator decides address equality by comparing fingerprints of the
// normalized addresses.
type Comparator struct {
	normalize NormalizeFunc
}

// NewComparator returns a Comparator using fn, or Normalize when fn is nil.
func NewComparator(fn NormalizeFunc) *Comparator {
	if fn == nil {
		fn = Normalize
	}
	return &Comparator{normalize: fn}
}

var defaultComparator = NewComparator(nil)

// Equals reports whether a and b normalize to the same fingerprint.
func (c *Comparator) Equals(a, b address.Address) bool {
	return c.Fingerprint(a) == c.Fingerprint(b)
}

// Fingerprint normalizes addr and hashes its fields.
func (c *Comparator) Fingerprint(addr address.Address) string {
	return Hash(c.normalize(addr))
}

// Equals compares a and b with the default normalizer.
func Equals(a, b address.Address) bool {
	return defaultComparator.Equals(a, b)
}

// Fingerprint returns the fingerprint of addr under the default normalizer.
func Fingerprint(addr address.Address) string {
	return defaultComparator.Fingerprint(addr)
}

// Hash returns the hex MD5 of the fields of addr concatenated in street1,
// street2, city, state, zip order, absent fields counting as "". There is no
// separator, so values that shift across a field boundary hash the same; this
// keeps hashes compatible with existing normalized-address datasets.
func Hash(addr address.Address) string {
	var b strings.Builder
	for _, f := range addr.Fields() {
		if f.Valid {
			b.WriteString(f.String)
		}
	}
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/TFMV/uspsaddress/internal/lexicon"
	"github.com/TFMV/uspsaddress/internal/numword"
)

const zipLength = 5

// Reduce lower-cases s and trims surrounding whitespace.
func Reduce(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Unabbreviate replaces every space-separated token of s found in table, with or
// without a trailing period, by its expansion.
func Unabbreviate(s string, table lexicon.Table) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if expanded, ok := table.Lookup(word); ok {
			words[i] = expanded
		}
	}
	return strings.Join(words, " ")
}

// Number folds each run of number words in street into a single integer token.
// Plain digit tokens such as the house number are left alone.
//
//	Number("123 101st st")                   // "123 101 st"
//	Number("123 one hundred and first st")   // "123 101 st"
//	Number("123 one st apt four")            // "123 1 st apt 4"
func Number(street string) string {
	words := strings.Split(street, " ")

	numeric := make([]bool, len(words))
	found := false
	for i, word := range words {
		numeric[i] = isNumberWord(word)
		found = found || numeric[i]
	}
	if !found {
		return street
	}

	folded := make([]string, 0, len(words))
	var run []string
	flush := func() {
		if len(run) == 0 {
			return
		}
		if n := numword.Val(strings.Join(run, " ")); n != 0 {
			folded = append(folded, strconv.Itoa(n))
		} else {
			folded = append(folded, run...)
		}
		run = run[:0]
	}

	for i, word := range words {
		switch {
		case numeric[i]:
			run = append(run, word)
		case word == "and" && len(run) > 0 && i+1 < len(words) && numeric[i+1]:
			run = append(run, word)
		default:
			flush()
			folded = append(folded, word)
		}
	}
	flush()

	return strings.Join(folded, " ")
}

// isNumberWord reports whether word has a numeric value that differs from its
// own text, i.e. it still needs folding. Plain digit strings, including
// zero-padded ones such as "007", are kept as written.
func isNumberWord(word string) bool {
	if strings.Trim(word, "0123456789") == "" {
		return false
	}
	n := numword.Val(word)
	return n != 0 && strconv.Itoa(n) != word
}

// Zip keeps the first five characters of the trimmed zip code. Whitespace left
// at the end of the cut is trimmed too.
func Zip(zip string) string {
	zip = strings.TrimSpace(zip)
	if utf8.RuneCountInString(zip) > zipLength {
		zip = strings.TrimSpace(string([]rune(zip)[:zipLength]))
	}
	return zip
}

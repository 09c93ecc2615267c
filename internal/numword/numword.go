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

// Package numword resolves English number words, ordinals and digit strings to
// integers.
package numword

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var units = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,

	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20, "thirtieth": 30, "fortieth": 40,
	"fiftieth": 50, "sixtieth": 60, "seventieth": 70, "eightieth": 80,
	"ninetieth": 90,
}

var magnitudes = map[string]int{
	"hundred": 100, "hundredth": 100,
	"thousand": 1_000, "thousandth": 1_000,
	"million": 1_000_000, "millionth": 1_000_000,
	"billion": 1_000_000_000, "billionth": 1_000_000_000,
}

var (
	reDigits   = regexp.MustCompile(`^(\d+|\d{1,3}(,\d{3})+)$`)
	reOrdinal  = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)
	reHasDigit = regexp.MustCompile(`\d`)
)

// Val returns the integer value of s, or 0 when s is not a number. Zero itself
// also resolves to 0, so "0" and "zero" cannot be told apart from non-numbers.
//
//	Val("17")                    // 17
//	Val("101st")                 // 101
//	Val("twenty-one")            // 21
//	Val("one hundred and first") // 101
//	Val("main")                  // 0
func Val(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	if n, ok := digits(s); ok {
		return n
	}
	return phrase(words(s))
}

// words splits s on whitespace and splits hyphenated number words
// ("twenty-one"). A hyphen next to digits ("37-12") is a house number, not a
// phrase, so it yields nil.
func words(s string) []string {
	var out []string
	for _, field := range strings.Fields(s) {
		if !strings.Contains(field, "-") {
			out = append(out, field)
			continue
		}
		if reHasDigit.MatchString(field) {
			return nil
		}
		out = append(out, strings.FieldsFunc(field, func(r rune) bool { return r == '-' })...)
	}
	return out
}

// digits handles a single all-digit or ordinal-suffixed digit string.
func digits(s string) (int, bool) {
	if reDigits.MatchString(s) {
		n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
		if err != nil {
			return 0, true
		}
		return n, true
	}
	if m := reOrdinal.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, true
		}
		return n, true
	}
	return 0, false
}

// phrase reads number words most significant first. A unit may only follow a
// tens word ("twenty one"), "hundred" may only scale a value below 100, and
// larger magnitudes must descend, which keeps the result within
// billion * 10^4. Anything else is not a number.
func phrase(tokens []string) int {
	var total, current, last int
	lastMag := math.MaxInt
	seen := false
	for _, w := range tokens {
		var n int
		switch {
		case w == "and":
			continue
		case units[w] != 0 || w == "zero":
			n = units[w]
		case magnitudes[w] == 100:
			if current >= 100 {
				return 0
			}
			if current == 0 {
				current = 1
			}
			current *= 100
			last, seen = 0, true
			continue
		case magnitudes[w] != 0:
			mag := magnitudes[w]
			if mag >= lastMag {
				return 0
			}
			if current == 0 {
				current = 1
			}
			total += current * mag
			current, last, lastMag, seen = 0, 0, mag, true
			continue
		default:
			v, ok := digits(w)
			if !ok || v >= 1000 {
				return 0
			}
			n = v
		}

		if last != 0 && !(last >= 20 && last%10 == 0 && n > 0 && n < 10) {
			return 0
		}
		current += n
		last = n
		if n == 0 {
			last = -1
		}
		seen = true
	}
	if !seen {
		return 0
	}
	return total + current
}

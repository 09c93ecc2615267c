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

// DuplicateGroup holds results that share one fingerprint.
type DuplicateGroup struct {
	Fingerprint string   `json:"fingerprint"`
	Members     []Result `json:"members"`
}

// GroupDuplicates groups results by fingerprint. Only groups with two or more
// members are returned, ordered by the position of their first member.
func GroupDuplicates(results []Result) []DuplicateGroup {
	index := make(map[string]int, len(results))
	var groups []DuplicateGroup

	for _, res := range results {
		if i, ok := index[res.Fingerprint]; ok {
			groups[i].Members = append(groups[i].Members, res)
			continue
		}
		index[res.Fingerprint] = len(groups)
		groups = append(groups, DuplicateGroup{
			Fingerprint: res.Fingerprint,
			Members:     []Result{res},
		})
	}

	dups := groups[:0]
	for _, g := range groups {
		if len(g.Members) > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

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

package lexicon

// States maps USPS state, territory and military codes to lower-case names.
var States = Table{
	// military "states"
	"aa": "armed forces americas (except canada)",
	"ap": "armed forces pacific",
	// ae covers four regions; one composite name keeps it a single entry
	"ae": "armed forces africa, canada, europe, middle east",
	// states and territories
	"al": "alabama",
	"ak": "alaska",
	"as": "american samoa",
	"az": "arizona",
	"ar": "arkansas",
	"ca": "california",
	"co": "colorado",
	"ct": "connecticut",
	"de": "delaware",
	"dc": "district of columbia",
	"fm": "federated states of micronesia",
	"fl": "florida",
	"ga": "georgia",
	"gu": "guam",
	"hi": "hawaii",
	"id": "idaho",
	"il": "illinois",
	"in": "indiana",
	"ia": "iowa",
	"ks": "kansas",
	"ky": "kentucky",
	"la": "louisiana",
	"me": "maine",
	"mh": "marshall islands",
	"md": "maryland",
	"ma": "massachusetts",
	"mi": "michigan",
	"mn": "minnesota",
	"ms": "mississippi",
	"mo": "missouri",
	"mt": "montana",
	"ne": "nebraska",
	"nv": "nevada",
	"nh": "new hampshire",
	"nj": "new jersey",
	"nm": "new mexico",
	"ny": "new york",
	"nc": "north carolina",
	"nd": "north dakota",
	"mp": "northern mariana islands",
	"oh": "ohio",
	"ok": "oklahoma",
	"or": "oregon",
	"pw": "palau",
	"pa": "pennsylvania",
	"pr": "puerto rico",
	"ri": "rhode island",
	"sc": "south carolina",
	"sd": "south dakota",
	"tn": "tennessee",
	"tx": "texas",
	"ut": "utah",
	"vt": "vermont",
	"vi": "virgin islands",
	"va": "virginia",
	"wa": "washington",
	"wv": "west virginia",
	"wi": "wisconsin",
	"wy": "wyoming",
}

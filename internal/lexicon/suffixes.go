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

// Suffixes maps USPS street suffix abbreviations and common misspellings to
// their canonical street type.
var Suffixes = Table{
	"allee":    "alley",
	"ally":     "alley",
	"aly":      "alley",
	"anex":     "annex",
	"anx":      "annex",
	"arc":      "arcade",
	"av":       "avenue",
	"ave":      "avenue",
	"aven":     "avenue",
	"avenu":    "avenue",
	"avn":      "avenue",
	"avnue":    "avenue",
	"bayou":    "bayoo",
	"bch":      "beach",
	"blf":      "bluff",
	"bluf":     "bluff",
	"blvd":     "boulevard",
	"bnd":      "bend",
	"bot":      "bottom",
	"bottm":    "bottom",
	"boul":     "boulevard",
	"boulv":    "boulevard",
	"br":       "branch",
	"brdge":    "bridge",
	"brg":      "bridge",
	"brk":      "brook",
	"brnch":    "branch",
	"btm":      "bottom",
	"byp":      "bypass",
	"bypa":     "bypass",
	"bypas":    "bypass",
	"byps":     "bypass",
	"canyn":    "canyon",
	"causway":  "causeway",
	"cen":      "center",
	"cent":     "center",
	"centr":    "center",
	"centre":   "center",
	"cir":      "circle",
	"circ":     "circle",
	"circl":    "circle",
	"ck":       "creek",
	"clb":      "club",
	"clf":      "cliff",
	"clfs":     "cliffs",
	"cmp":      "camp",
	"cnter":    "center",
	"cntr":     "center",
	"cnyn":     "canyon",
	"cor":      "corner",
	"cors":     "corners",
	"cp":       "camp",
	"cpe":      "cape",
	"cr":       "creek",
	"crcl":     "circle",
	"crcle":    "circle",
	"crecent":  "crescent",
	"cres":     "crescent",
	"cresent":  "crescent",
	"crk":      "creek",
	"crscnt":   "crescent",
	"crse":     "course",
	"crsent":   "crescent",
	"crsnt":    "crescent",
	"crssing":  "crossing",
	"crssng":   "crossing",
	"crt":      "court",
	"cswy":     "causeway",
	// listed as both "court" and "courts" in the USPS source; the later entry wins
	"ct":       "courts",
	"ctr":      "center",
	"cv":       "cove",
	"cyn":      "canyon",
	"div":      "divide",
	"dl":       "dale",
	"dm":       "dam",
	"dr":       "drive",
	"driv":     "drive",
	"drv":      "drive",
	"dv":       "divide",
	"dvd":      "divide",
	"est":      "estate",
	"ests":     "estates",
	"exp":      "expressway",
	"expr":     "expressway",
	"express":  "expressway",
	"expw":     "expressway",
	"expy":     "expressway",
	"ext":      "extension",
	"extn":     "extension",
	"extnsn":   "extension",
	"exts":     "extensions",
	"fld":      "field",
	"flds":     "fields",
	"fls":      "falls",
	"flt":      "flat",
	"flts":     "flats",
	"forests":  "forest",
	"forg":     "forge",
	"frd":      "ford",
	"freewy":   "freeway",
	"frg":      "forge",
	"frk":      "fork",
	"frks":     "forks",
	"frry":     "ferry",
	"frst":     "forest",
	"frt":      "fort",
	"frway":    "freeway",
	"frwy":     "freeway",
	"fry":      "ferry",
	"ft":       "fort",
	"fwy":      "freeway",
	"gardn":    "garden",
	"gatewy":   "gateway",
	"gatway":   "gateway",
	"gdn":      "garden",
	"gdns":     "gardens",
	"gln":      "glen",
	"grden":    "garden",
	"grdn":     "garden",
	"grdns":    "gardens",
	"grn":      "green",
	"grov":     "grove",
	"grv":      "grove",
	"gtway":    "gateway",
	"gtwy":     "gateway",
	"harb":     "harbor",
	"harbr":    "harbor",
	"havn":     "haven",
	"hbr":      "harbor",
	"height":   "heights",
	"hgts":     "heights",
	"highwy":   "highway",
	"hiway":    "highway",
	"hiwy":     "highway",
	"hl":       "hill",
	"hllw":     "hollow",
	"hls":      "hills",
	"hollows":  "hollow",
	"holw":     "hollow",
	"holws":    "hollow",
	"hrbor":    "harbor",
	"ht":       "heights",
	"hts":      "heights",
	"hvn":      "haven",
	"hway":     "highway",
	"hwy":      "highway",
	"inlt":     "inlet",
	"is":       "island",
	"isles":    "isle",
	"islnd":    "island",
	"islnds":   "islands",
	"iss":      "islands",
	"jct":      "junction",
	"jction":   "junction",
	"jctn":     "junction",
	"jctns":    "junctions",
	"jcts":     "junctions",
	"junctn":   "junction",
	"juncton":  "junction",
	"knl":      "knoll",
	"knls":     "knolls",
	"knol":     "knoll",
	"ky":       "key",
	"kys":      "keys",
	"la":       "lane",
	"lanes":    "lane",
	"lck":      "lock",
	"lcks":     "locks",
	"ldg":      "lodge",
	"ldge":     "lodge",
	"lf":       "loaf",
	"lgt":      "light",
	"lk":       "lake",
	"lks":      "lakes",
	"ln":       "lane",
	"lndg":     "landing",
	"lndng":    "landing",
	"lodg":     "lodge",
	"loops":    "loop",
	"mdw":      "meadow",
	"mdws":     "meadows",
	"medows":   "meadows",
	"missn":    "mission",
	"ml":       "mill",
	"mls":      "mills",
	"mnr":      "manor",
	"mnrs":     "manors",
	"mnt":      "mount",
	"mntain":   "mountain",
	"mntn":     "mountain",
	"mntns":    "mountains",
	"mountin":  "mountain",
	"msn":      "mission",
	"mssn":     "mission",
	"mt":       "mount",
	"mtin":     "mountain",
	"mtn":      "mountain",
	"nck":      "neck",
	"orch":     "orchard",
	"orchrd":   "orchard",
	"ovl":      "oval",
	"parkwy":   "parkway",
	"paths":    "path",
	"pikes":    "pike",
	"pk":       "park",
	"pkway":    "parkway",
	"pkwy":     "parkway",
	"pkwys":    "parkways",
	"pky":      "parkway",
	"pl":       "place",
	"plaines":  "plains",
	"pln":      "plain",
	"plns":     "plains",
	"plz":      "plaza",
	"plza":     "plaza",
	"pnes":     "pines",
	"pr":       "prairie",
	"prarie":   "prairie",
	"prk":      "park",
	"prr":      "prairie",
	"prt":      "port",
	"prts":     "ports",
	"pt":       "point",
	"pts":      "points",
	"rad":      "radial",
	"radiel":   "radial",
	"radl":     "radial",
	"ranches":  "ranch",
	"rd":       "road",
	"rdg":      "ridge",
	"rdge":     "ridge",
	"rdgs":     "ridges",
	"rds":      "roads",
	"riv":      "river",
	"rivr":     "river",
	"rnch":     "ranch",
	"rnchs":    "ranch",
	"rpd":      "rapid",
	"rpds":     "rapids",
	"rst":      "rest",
	"rvr":      "river",
	"shl":      "shoal",
	"shls":     "shoals",
	"shoar":    "shore",
	"shoars":   "shores",
	"shr":      "shore",
	"shrs":     "shores",
	"smt":      "summit",
	"spg":      "spring",
	"spgs":     "springs",
	"spng":     "spring",
	"spngs":    "springs",
	"sprng":    "spring",
	"sprngs":   "springs",
	"sq":       "square",
	"sqr":      "square",
	"sqre":     "square",
	"sqrs":     "squares",
	"squ":      "square",
	"st":       "street",
	"sta":      "station",
	"statn":    "station",
	"stn":      "station",
	"str":      "street",
	"stra":     "stravenue",
	"strav":    "stravenue",
	"strave":   "stravenue",
	"straven":  "stravenue",
	"stravn":   "stravenue",
	"streme":   "stream",
	"strm":     "stream",
	"strt":     "street",
	"strvn":    "stravenue",
	"strvnue":  "stravenue",
	"sumit":    "summit",
	"sumitt":   "summit",
	"ter":      "terrace",
	"terr":     "terrace",
	"tpk":      "turnpike",
	"tpke":     "turnpike",
	"tr":       "trail",
	"traces":   "trace",
	"tracks":   "track",
	"trails":   "trail",
	"trak":     "track",
	"trce":     "trace",
	"trfy":     "trafficway",
	"trk":      "track",
	"trks":     "track",
	"trl":      "trail",
	"trls":     "trail",
	"trnpk":    "turnpike",
	"trpk":     "turnpike",
	"tunel":    "tunnel",
	"tunl":     "tunnel",
	"tunls":    "tunnel",
	"tunnels":  "tunnel",
	"tunnl":    "tunnel",
	"turnpk":   "turnpike",
	"un":       "union",
	"vally":    "valley",
	"vdct":     "viaduct",
	"via":      "viaduct",
	"viadct":   "viaduct",
	"vill":     "village",
	"villag":   "village",
	"villg":    "village",
	"villiage": "village",
	"vis":      "vista",
	"vist":     "vista",
	"vl":       "ville",
	"vlg":      "village",
	"vlgs":     "villages",
	"vlly":     "valley",
	"vly":      "valley",
	"vlys":     "valleys",
	"vst":      "vista",
	"vsta":     "vista",
	"vw":       "view",
	"vws":      "views",
	"wls":      "wells",
	"wy":       "way",
	"xing":     "crossing",
}

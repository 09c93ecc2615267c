package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		table  Table
		token  string
		want   string
		wantOK bool
	}{
		{"verbatim key", Suffixes, "st", "street", true},
		{"trailing period", Suffixes, "st.", "street", true},
		{"two trailing periods", Suffixes, "st..", "", false},
		{"no prefix matching", Suffixes, "stx", "", false},
		{"case sensitive", Suffixes, "ST", "", false},
		{"direction", Directions, "nw", "northwest", true},
		{"unit", Units, "apt.", "apartment", true},
		{"state", States, "la", "louisiana", true},
		{"expansion is not a key", States, "louisiana", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.table.Lookup(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuplicateCourtKeyResolvesToLaterEntry(t *testing.T) {
	assert.Equal(t, "courts", Suffixes["ct"])
	assert.Equal(t, "court", Suffixes["crt"])
}

// Expansions must not contain tokens that a later pass, or the same table,
// would rewrite again; otherwise normalizing twice changes the result.
func TestExpansionsAreStable(t *testing.T) {
	street := []Table{Directions, Suffixes, Units}
	for _, table := range street {
		for key, value := range table {
			for _, token := range strings.Split(value, " ") {
				for _, other := range street {
					_, ok := other.Lookup(token)
					assert.False(t, ok, "%q expands to %q which is itself a key", key, value)
				}
			}
		}
	}
	for key, value := range States {
		for _, token := range strings.Split(value, " ") {
			_, ok := States.Lookup(token)
			assert.False(t, ok, "state %q expands to %q which is itself a key", key, value)
		}
	}
}

package matcher

import (
	"strings"
	"testing"

	"github.com/TFMV/uspsaddress/pkg/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	in := "Street1,street2,city,state,zip\n" +
		"123 Foo St.,Apt 456,Baton ROUGE,la.,12345\n" +
		"9 Elm Ave,,,,\n"

	records, err := ReadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, address.New(
		address.WithStreet1("123 Foo St."),
		address.WithStreet2("Apt 456"),
		address.WithCity("Baton ROUGE"),
		address.WithState("la."),
		address.WithZip("12345"),
	), records[0].Address)

	assert.Equal(t, 2, records[1].ID)
	assert.Equal(t, address.New(address.WithStreet1("9 Elm Ave")), records[1].Address)
}

func TestReadRecords_IDColumn(t *testing.T) {
	records, err := ReadRecords(strings.NewReader("id,street1\n42,1 Main St\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 42, records[0].ID)
}

func TestReadRecords_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"unknown column", "street1,country\n1 Main St,US\n"},
		{"bad id", "id,street1\nabc,1 Main St\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

package address_test

import (
	"encoding/json"
	"testing"

	"github.com/TFMV/uspsaddress/pkg/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AbsentFieldsStayAbsent(t *testing.T) {
	a := address.New(address.WithCity("Baton Rouge"))

	assert.True(t, a.HasCity())
	assert.Equal(t, "Baton Rouge", a.City())
	assert.False(t, a.HasStreet1())
	assert.False(t, a.HasStreet2())
	assert.False(t, a.HasState())
	assert.False(t, a.HasZip())
}

func TestPresenceIsNotEmptiness(t *testing.T) {
	empty := address.New(address.WithStreet2(""))

	assert.True(t, empty.HasStreet2())
	assert.Equal(t, "", empty.Street2())
	assert.NotEqual(t, address.New(), empty)
}

func TestSetAndClear(t *testing.T) {
	var a address.Address
	a.SetZip("12345")
	require.True(t, a.HasZip())

	a.ClearZip()
	assert.False(t, a.HasZip())
	assert.Equal(t, "", a.Zip())
}

func TestFromStrings(t *testing.T) {
	street, zip := "123 Foo St.", "12345"
	a := address.FromStrings(&street, nil, nil, nil, &zip)

	assert.Equal(t, address.New(address.WithStreet1(street), address.WithZip(zip)), a)
}

func TestJSON(t *testing.T) {
	a := address.New(address.WithStreet1("123 foo st"), address.WithState(""))

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"street1":"123 foo st","street2":null,"city":null,"state":"","zip":null}`, string(data))

	var back address.Address
	require.NoError(t, json.Unmarshal([]byte(`{"street1":"123 foo st","state":""}`), &back))
	assert.Equal(t, a, back)
}

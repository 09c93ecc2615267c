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

package address

import (
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
)

// Address is a US postal address made of five optional fields. An absent field
// (Valid == false) is distinct from a present empty string.
type Address struct {
	street1 pgtype.Text
	street2 pgtype.Text
	city    pgtype.Text
	state   pgtype.Text
	zip     pgtype.Text
}

// Option sets a single field on a new Address.
type Option func(*Address)

func WithStreet1(s string) Option { return func(a *Address) { a.SetStreet1(s) } }
func WithStreet2(s string) Option { return func(a *Address) { a.SetStreet2(s) } }
func WithCity(s string) Option    { return func(a *Address) { a.SetCity(s) } }
func WithState(s string) Option   { return func(a *Address) { a.SetState(s) } }
func WithZip(s string) Option     { return func(a *Address) { a.SetZip(s) } }

// New builds an Address from the given options. Fields without an option are absent.
func New(opts ...Option) Address {
	var a Address
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// FromStrings builds an Address where a nil pointer marks the field absent.
func FromStrings(street1, street2, city, state, zip *string) Address {
	return Address{
		street1: text(street1),
		street2: text(street2),
		city:    text(city),
		state:   text(state),
		zip:     text(zip),
	}
}

// FromFields builds an Address from fields in street1, street2, city, state, zip order.
func FromFields(f [5]pgtype.Text) Address {
	return Address{street1: f[0], street2: f[1], city: f[2], state: f[3], zip: f[4]}
}

func text(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func (a Address) Street1() string { return a.street1.String }
func (a Address) Street2() string { return a.street2.String }
func (a Address) City() string    { return a.city.String }
func (a Address) State() string   { return a.state.String }
func (a Address) Zip() string     { return a.zip.String }

func (a Address) HasStreet1() bool { return a.street1.Valid }
func (a Address) HasStreet2() bool { return a.street2.Valid }
func (a Address) HasCity() bool    { return a.city.Valid }
func (a Address) HasState() bool   { return a.state.Valid }
func (a Address) HasZip() bool     { return a.zip.Valid }

func (a *Address) SetStreet1(s string) { a.street1 = pgtype.Text{String: s, Valid: true} }
func (a *Address) SetStreet2(s string) { a.street2 = pgtype.Text{String: s, Valid: true} }
func (a *Address) SetCity(s string)    { a.city = pgtype.Text{String: s, Valid: true} }
func (a *Address) SetState(s string)   { a.state = pgtype.Text{String: s, Valid: true} }
func (a *Address) SetZip(s string)     { a.zip = pgtype.Text{String: s, Valid: true} }

func (a *Address) ClearStreet1() { a.street1 = pgtype.Text{} }
func (a *Address) ClearStreet2() { a.street2 = pgtype.Text{} }
func (a *Address) ClearCity()    { a.city = pgtype.Text{} }
func (a *Address) ClearState()   { a.state = pgtype.Text{} }
func (a *Address) ClearZip()     { a.zip = pgtype.Text{} }

// Fields returns the fields in street1, street2, city, state, zip order.
func (a Address) Fields() [5]pgtype.Text {
	return [5]pgtype.Text{a.street1, a.street2, a.city, a.state, a.zip}
}

// jsonAddress is the wire shape; nil pointers encode absent fields as null.
type jsonAddress struct {
	Street1 *string `json:"street1"`
	Street2 *string `json:"street2"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
}

func ptr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonAddress{
		Street1: ptr(a.street1),
		Street2: ptr(a.street2),
		City:    ptr(a.city),
		State:   ptr(a.state),
		Zip:     ptr(a.zip),
	})
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var j jsonAddress
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*a = FromStrings(j.Street1, j.Street2, j.City, j.State, j.Zip)
	return nil
}

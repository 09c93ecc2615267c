package main

import (
	"github.com/spf13/cobra"

	"github.com/TFMV/uspsaddress/pkg/address"
)

var addressFields = []struct {
	name  string
	usage string
	set   func(*address.Address, string)
}{
	{"street1", "Primary street line", (*address.Address).SetStreet1},
	{"street2", "Secondary line (unit, suite)", (*address.Address).SetStreet2},
	{"city", "City", (*address.Address).SetCity},
	{"state", "State name or abbreviation", (*address.Address).SetState},
	{"zip", "ZIP or ZIP+4", (*address.Address).SetZip},
}

// bindAddressFlags registers one flag per address field, each name prefixed
// with prefix, and returns a func that builds the Address after parsing.
// Flags that were not given leave the field absent, while --city="" sets it
// to the empty string.
func bindAddressFlags(cmd *cobra.Command, prefix, label string) func() address.Address {
	values := make([]string, len(addressFields))
	for i, f := range addressFields {
		cmd.Flags().StringVar(&values[i], prefix+f.name, "", label+f.usage)
	}

	return func() address.Address {
		var addr address.Address
		for i, f := range addressFields {
			if cmd.Flags().Changed(prefix + f.name) {
				f.set(&addr, values[i])
			}
		}
		return addr
	}
}

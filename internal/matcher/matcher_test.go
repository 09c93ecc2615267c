package matcher

import (
	"context"
	"testing"

	"github.com/TFMV/uspsaddress/pkg/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []Record {
	return []Record{
		{ID: 1, Address: address.New(address.WithStreet1("123 N 1st St"), address.WithZip("70801"))},
		{ID: 2, Address: address.New(address.WithStreet1("9 Elm Ave"))},
		{ID: 3, Address: address.New(address.WithStreet1("123 north first street"), address.WithZip("70801-0001"))},
		{ID: 4, Address: address.New(address.WithStreet1("9 elm avenue"))},
		{ID: 5, Address: address.New(address.WithStreet1("10 elm avenue"))},
	}
}

func TestProcessAddresses_PreservesOrder(t *testing.T) {
	in := records()

	results, err := ProcessAddresses(context.Background(), in, 3)
	require.NoError(t, err)
	require.Len(t, results, len(in))

	for i, res := range results {
		assert.Equal(t, in[i].ID, res.ID)
		assert.Equal(t, Normalize(in[i]), res)
	}
	assert.Equal(t, "123 north 1 street", results[0].Normalized.Street1())
}

func TestProcessAddresses_ZeroWorkers(t *testing.T) {
	results, err := ProcessAddresses(context.Background(), records(), 0)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestProcessAddresses_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ProcessAddresses(ctx, records(), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, len(results), len(records()))
}

func TestGroupDuplicates(t *testing.T) {
	results, err := ProcessAddresses(context.Background(), records(), 2)
	require.NoError(t, err)

	groups := GroupDuplicates(results)
	require.Len(t, groups, 2)

	assert.Equal(t, []int{1, 3}, ids(groups[0]))
	assert.Equal(t, []int{2, 4}, ids(groups[1]))
	assert.Equal(t, results[0].Fingerprint, groups[0].Fingerprint)
}

func TestGroupDuplicates_Empty(t *testing.T) {
	assert.Empty(t, GroupDuplicates(nil))
}

func ids(g DuplicateGroup) []int {
	out := make([]int, 0, len(g.Members))
	for _, m := range g.Members {
		out = append(out, m.ID)
	}
	return out
}

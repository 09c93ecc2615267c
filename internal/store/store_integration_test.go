//go:build integration

package store

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/uspsaddress/internal/matcher"
	"github.com/TFMV/uspsaddress/pkg/address"
	"github.com/TFMV/uspsaddress/pkg/config"
	"github.com/TFMV/uspsaddress/pkg/db"
)

func testStore(t *testing.T) (*Store, func()) {
	t.Helper()

	_ = godotenv.Load("../../.env.test")
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.NewConnection(ctx, config.DBCreds{URL: url})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(pool))

	return New(pool), pool.Close
}

func TestStore_SaveAndFind(t *testing.T) {
	s, done := testStore(t)
	defer done()
	ctx := context.Background()

	runID, err := s.CreateRun(ctx, "integration")
	require.NoError(t, err)

	results, err := matcher.ProcessAddresses(ctx, []matcher.Record{
		{ID: 1, Address: address.New(address.WithStreet1("123 N 1st St"), address.WithCity("Baton Rouge"))},
		{ID: 2, Address: address.New(address.WithStreet1("123 north first street"), address.WithCity("BATON ROUGE"))},
	}, 2)
	require.NoError(t, err)

	ids, err := s.SaveBatch(ctx, runID, results)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	found, err := s.FindByFingerprint(ctx, results[0].Fingerprint)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(found), 2)
	assert.Equal(t, results[0].Normalized, found[len(found)-2].Normalized)
	assert.False(t, found[0].Normalized.HasZip())
}

func TestStore_LoadAndTruncate(t *testing.T) {
	s, done := testStore(t)
	defer done()
	ctx := context.Background()

	pool, err := db.NewConnection(ctx, config.DBCreds{URL: os.Getenv("TEST_DATABASE_URL")})
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, s.TruncateLoad(ctx))
	n, err := db.LoadCSV(ctx, pool, strings.NewReader("street1,zip\n123 Foo St,12345-6789\n9 Elm Ave,\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	records, err := s.PendingLoad(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "12345-6789", records[0].Address.Zip())
	assert.False(t, records[1].Address.HasZip())

	require.NoError(t, s.TruncateLoad(ctx))
}

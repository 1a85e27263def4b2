package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rashed-commits/uae-market-intel/models"
)

func TestStoreStartsEmpty(t *testing.T) {
	s := New()

	signals, mode, updatedAt := s.Snapshot()
	require.Empty(t, signals)
	require.Equal(t, ModeEmpty, mode)
	require.True(t, updatedAt.IsZero())
}

func TestStoreReplaceDiscardsPrevious(t *testing.T) {
	s := New()
	s.Replace([]models.Signal{{ID: 1}, {ID: 2}}, ModeFallback)

	// A later live snapshot fully replaces fallback data, no merge.
	s.Replace([]models.Signal{{ID: 3}}, ModeLive)

	signals, mode, updatedAt := s.Snapshot()
	require.Len(t, signals, 1)
	require.Equal(t, 3, signals[0].ID)
	require.Equal(t, ModeLive, mode)
	require.False(t, updatedAt.IsZero())
}

func TestFilterTransitions(t *testing.T) {
	f := DefaultFilter()
	require.True(t, f.AllSectors())
	require.True(t, f.AllTypes())
	require.Empty(t, f.Search)

	f = f.WithSector("Fintech").WithType("trending").WithSearch("banking")
	require.Equal(t, "Fintech", f.Sector)
	require.Equal(t, "trending", f.Type)
	require.Equal(t, "banking", f.Search)

	// Each axis overwrites independently; others are untouched.
	f = f.WithSector(All)
	require.True(t, f.AllSectors())
	require.Equal(t, "trending", f.Type)
	require.Equal(t, "banking", f.Search)

	// Selecting All twice is idempotent.
	require.Equal(t, f, f.WithSector(All))
}

package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignals(t *testing.T) {
	signals := Signals()
	require.Len(t, signals, 25)

	seen := make(map[int]bool)
	for _, s := range signals {
		require.False(t, seen[s.ID], "duplicate id %d", s.ID)
		seen[s.ID] = true

		// The fixture must stay schema-compatible with live data so the
		// query engine never branches on snapshot origin.
		require.NotEmpty(t, s.Title)
		require.NotEmpty(t, s.Summary)
		require.True(t, s.Type.Known(), "signal %d has unknown type %q", s.ID, s.Type)
		require.True(t, s.Priority.Known(), "signal %d has unknown priority %q", s.ID, s.Priority)
		require.NotEmpty(t, s.Sector)
		require.NotEmpty(t, s.Platform)
	}
}

func TestSignalsReturnsCopy(t *testing.T) {
	first := Signals()
	first[0].Title = "mutated"
	require.NotEqual(t, "mutated", Signals()[0].Title)
}

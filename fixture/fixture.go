// Package fixture embeds the offline seed dataset used whenever the live
// feed is unreachable. It is kept schema-compatible with live data so the
// query engine never branches on where a snapshot came from.
package fixture

import (
	_ "embed"
	"encoding/json"

	"github.com/rashed-commits/uae-market-intel/models"
)

//go:embed seed.json
var seedJSON []byte

var seed []models.Signal

func init() {
	if err := json.Unmarshal(seedJSON, &seed); err != nil {
		panic("fixture: invalid embedded seed data: " + err.Error())
	}
}

// Signals returns a copy of the seed dataset. Callers may reorder or
// truncate the returned slice freely.
func Signals() []models.Signal {
	out := make([]models.Signal, len(seed))
	copy(out, seed)
	return out
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rashed-commits/uae-market-intel/models"
	"github.com/rashed-commits/uae-market-intel/query"
)

type sectorGroup struct {
	Sector  string          `json:"sector"`
	Count   int             `json:"count"`
	Signals []models.Signal `json:"signals"`
}

type platformGroup struct {
	Platform string   `json:"platform"`
	Count    int      `json:"count"`
	Share    int      `json:"share"`
	Types    []string `json:"types"`
}

// GetSectors returns sector groupings over the whole snapshot, largest
// first, each truncated to the configured top-N for display. The count
// always reflects the full group size.
func (d *Dashboard) GetSectors(c *gin.Context) {
	topN := d.SectorTopN
	if raw := c.Query("top"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			topN = n
		}
	}

	signals, mode, _ := d.Store.Snapshot()
	groups := query.GroupBySector(signals)

	out := make([]sectorGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, sectorGroup{
			Sector:  g.Key,
			Count:   g.Size(),
			Signals: g.Top(topN),
		})
	}
	c.JSON(http.StatusOK, gin.H{"sectors": out, "mode": mode})
}

// GetPlatforms returns platform groupings with each platform's share of
// the largest group and the distinct signal types seen on it.
func (d *Dashboard) GetPlatforms(c *gin.Context) {
	signals, mode, _ := d.Store.Snapshot()
	groups := query.GroupByPlatform(signals)
	share := query.PlatformShare(groups)

	out := make([]platformGroup, 0, len(groups))
	for _, g := range groups {
		types := make([]string, 0, 4)
		for _, typ := range g.Types() {
			types = append(types, typ.Display())
		}
		out = append(out, platformGroup{
			Platform: g.Key,
			Count:    g.Size(),
			Share:    share[g.Key],
			Types:    types,
		})
	}
	c.JSON(http.StatusOK, gin.H{"platforms": out, "mode": mode})
}

// GetFilters returns the selectable filter options: the sector set is
// derived from the current snapshot, the type set is fixed.
func (d *Dashboard) GetFilters(c *gin.Context) {
	signals, _, _ := d.Store.Snapshot()

	types := make([]gin.H, 0, 4)
	for _, typ := range models.Types() {
		types = append(types, gin.H{"value": string(typ), "label": typ.Display()})
	}

	c.JSON(http.StatusOK, gin.H{
		"sectors": query.Sectors(signals),
		"types":   types,
	})
}

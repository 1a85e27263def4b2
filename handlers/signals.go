package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rashed-commits/uae-market-intel/models"
	"github.com/rashed-commits/uae-market-intel/query"
	"github.com/rashed-commits/uae-market-intel/refresh"
	"github.com/rashed-commits/uae-market-intel/store"
)

// Dashboard serves the derived views over the in-memory snapshot. All
// state is held explicitly so handlers can be tested with constructed
// stores rather than ambient globals.
type Dashboard struct {
	Store      *store.Store
	Controller *refresh.Controller
	SectorTopN int
}

func NewDashboard(s *store.Store, c *refresh.Controller, sectorTopN int) *Dashboard {
	if sectorTopN <= 0 {
		sectorTopN = 5
	}
	return &Dashboard{Store: s, Controller: c, SectorTopN: sectorTopN}
}

func (d *Dashboard) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/signals", d.GetSignals)
		api.GET("/signals/:id", d.GetSignal)
		api.GET("/stats", d.GetStats)
		api.GET("/sectors", d.GetSectors)
		api.GET("/platforms", d.GetPlatforms)
		api.GET("/filters", d.GetFilters)
		api.POST("/refresh", d.TriggerRefresh)
	}
}

func filterFromQuery(c *gin.Context) store.Filter {
	return store.DefaultFilter().
		WithSector(c.DefaultQuery("sector", store.All)).
		WithType(c.DefaultQuery("type", store.All)).
		WithSearch(c.Query("q"))
}

// GetSignals returns the filtered feed. An empty result is a defined
// "no results" state, distinct from mode "empty" (not yet loaded).
func (d *Dashboard) GetSignals(c *gin.Context) {
	signals, mode, updatedAt := d.Store.Snapshot()
	filtered := query.Apply(signals, filterFromQuery(c))
	if filtered == nil {
		filtered = []models.Signal{}
	}

	c.JSON(http.StatusOK, gin.H{
		"signals":    filtered,
		"count":      len(filtered),
		"mode":       mode,
		"updated_at": updatedAt,
	})
}

func (d *Dashboard) GetSignal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signal id"})
		return
	}

	signals, _, _ := d.Store.Snapshot()
	signal, ok := query.ByID(signals, id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "signal not found"})
		return
	}
	c.JSON(http.StatusOK, signal)
}

// GetStats reports the headline counters over the whole snapshot,
// unaffected by any filter parameters.
func (d *Dashboard) GetStats(c *gin.Context) {
	signals, mode, _ := d.Store.Snapshot()
	stats := query.ComputeStats(signals)

	c.JSON(http.StatusOK, gin.H{
		"total":         stats.Total,
		"high_priority": stats.HighPriority,
		"sectors":       stats.Sectors,
		"platforms":     stats.Platforms,
		"mode":          mode,
	})
}

// TriggerRefresh starts a manual refresh. While one is pending the
// trigger is rejected with 409 so overlapping refreshes from the same
// control cannot race.
func (d *Dashboard) TriggerRefresh(c *gin.Context) {
	if err := d.Controller.Refresh(c.Request.Context()); err != nil {
		if errors.Is(err, refresh.ErrRefreshInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "refresh already in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	_, mode, updatedAt := d.Store.Snapshot()
	c.JSON(http.StatusAccepted, gin.H{"mode": mode, "updated_at": updatedAt})
}

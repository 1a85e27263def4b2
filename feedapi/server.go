// Package feedapi is the upstream data source: a sqlite-backed signal
// API. It seeds itself from the embedded dataset on first run, so a
// fresh deployment serves data immediately.
package feedapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rashed-commits/uae-market-intel/fixture"
	"github.com/rashed-commits/uae-market-intel/models"
)

type Server struct {
	db           *gorm.DB
	log          zerolog.Logger
	defaultLimit int
}

func NewServer(db *gorm.DB, log zerolog.Logger, defaultLimit int) *Server {
	if defaultLimit <= 0 {
		defaultLimit = 200
	}
	return &Server{db: db, log: log, defaultLimit: defaultLimit}
}

// Init migrates the signals table and seeds it from the embedded
// dataset when empty.
func (s *Server) Init() error {
	if err := s.db.AutoMigrate(&Record{}); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&Record{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records := make([]Record, 0, len(fixture.Signals()))
	for _, sig := range fixture.Signals() {
		records = append(records, NewRecord(sig))
	}
	if err := s.db.Create(&records).Error; err != nil {
		return err
	}
	s.log.Info().Int("signals", len(records)).Msg("seeded empty database")
	return nil
}

func (s *Server) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/signals", s.GetSignals)
		api.GET("/signals/sector/:sector", s.GetBySector)
		api.GET("/signals/platform/:platform", s.GetByPlatform)
		api.GET("/search", s.Search)
		api.GET("/stats", s.GetStats)
	}
}

func (s *Server) respondSignals(c *gin.Context, q *gorm.DB, extra gin.H) {
	var records []Record
	if err := q.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	signals := make([]models.Signal, 0, len(records))
	for _, r := range records {
		signals = append(signals, r.Signal())
	}

	body := gin.H{
		"signals":   signals,
		"count":     len(signals),
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) GetSignals(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(s.defaultLimit)))
	if err != nil || limit <= 0 {
		limit = s.defaultLimit
	}

	q := s.db.Model(&Record{}).Order("score DESC, id ASC").Limit(limit)
	s.respondSignals(c, q, nil)
}

func (s *Server) GetBySector(c *gin.Context) {
	sector := c.Param("sector")
	q := s.db.Model(&Record{}).Where("sector = ?", sector).Order("score DESC")
	s.respondSignals(c, q, gin.H{"sector": sector})
}

func (s *Server) GetByPlatform(c *gin.Context) {
	platform := c.Param("platform")
	q := s.db.Model(&Record{}).Where("platform = ?", platform).Order("score DESC")
	s.respondSignals(c, q, gin.H{"platform": platform})
}

func (s *Server) Search(c *gin.Context) {
	term := "%" + c.Query("q") + "%"
	q := s.db.Model(&Record{}).
		Where("title LIKE ? OR summary LIKE ? OR keywords LIKE ? OR arabic_title LIKE ?", term, term, term, term).
		Order("score DESC")
	s.respondSignals(c, q, gin.H{"query": c.Query("q")})
}

func (s *Server) GetStats(c *gin.Context) {
	var total, high, sectors, platforms int64

	s.db.Model(&Record{}).Count(&total)
	s.db.Model(&Record{}).Where("priority = ?", string(models.PriorityHigh)).Count(&high)
	s.db.Model(&Record{}).Distinct("sector").Count(&sectors)
	s.db.Model(&Record{}).Distinct("platform").Count(&platforms)

	byType := map[string]int64{}
	rows := []struct {
		Type string
		Cnt  int64
	}{}
	s.db.Model(&Record{}).Select("type, COUNT(*) as cnt").Group("type").Scan(&rows)
	for _, row := range rows {
		byType[row.Type] = row.Cnt
	}

	c.JSON(http.StatusOK, gin.H{
		"total":         total,
		"high_priority": high,
		"sectors":       sectors,
		"platforms":     platforms,
		"by_type":       byType,
	})
}

package feedapi

import (
	"strings"

	"github.com/rashed-commits/uae-market-intel/models"
)

// Record is the sqlite row backing a signal. Keywords are stored as a
// comma-joined column; optional text fields persist as empty strings and
// map back to absent on the wire.
type Record struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	Title         string `gorm:"not null"`
	ArabicTitle   string
	Summary       string
	Type          string
	Sector        string
	Platform      string
	Priority      string
	Score         *int
	Mentions      *int
	Keywords      string
	RawText       string
	SourceURL     string
	DateCollected string
}

func (Record) TableName() string { return "signals" }

// Signal converts the row to the wire model. Empty optional columns
// become absent fields, never empty-string placeholders.
func (r Record) Signal() models.Signal {
	s := models.Signal{
		ID:       r.ID,
		Title:    r.Title,
		Summary:  r.Summary,
		Type:     models.SignalType(r.Type),
		Sector:   r.Sector,
		Platform: r.Platform,
		Priority: models.Priority(r.Priority),
		Score:    r.Score,
		Mentions: r.Mentions,
	}
	if r.ArabicTitle != "" {
		s.ArabicTitle = &r.ArabicTitle
	}
	if r.RawText != "" {
		s.RawText = &r.RawText
	}
	if r.SourceURL != "" {
		s.SourceURL = &r.SourceURL
	}
	if r.DateCollected != "" {
		s.DateCollected = &r.DateCollected
	}
	for _, kw := range strings.Split(r.Keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			s.Keywords = append(s.Keywords, kw)
		}
	}
	return s
}

// NewRecord converts a wire signal into a row, joining keywords.
func NewRecord(s models.Signal) Record {
	r := Record{
		ID:       s.ID,
		Title:    s.Title,
		Summary:  s.Summary,
		Type:     string(s.Type),
		Sector:   s.Sector,
		Platform: s.Platform,
		Priority: string(s.Priority),
		Score:    s.Score,
		Mentions: s.Mentions,
		Keywords: strings.Join(s.Keywords, ","),
	}
	if s.ArabicTitle != nil {
		r.ArabicTitle = *s.ArabicTitle
	}
	if s.RawText != nil {
		r.RawText = *s.RawText
	}
	if s.SourceURL != nil {
		r.SourceURL = *s.SourceURL
	}
	if s.DateCollected != nil {
		r.DateCollected = *s.DateCollected
	}
	return r
}

package models

import "strings"

// SignalType classifies how a signal was surfaced from the feed.
// The set is closed for display purposes, but values outside it are
// carried through unchanged rather than rejected, since upstream feeds
// are not under our control.
type SignalType string

const (
	TypeTrending    SignalType = "trending"
	TypePainPoint   SignalType = "pain_point"
	TypeOpportunity SignalType = "opportunity"
	TypeMention     SignalType = "mention"
)

var typeLabels = map[SignalType]string{
	TypeTrending:    "Trending",
	TypePainPoint:   "Pain Point",
	TypeOpportunity: "Opportunity",
	TypeMention:     "Mention",
}

// Known reports whether t is one of the four recognized kinds.
func (t SignalType) Known() bool {
	_, ok := typeLabels[t]
	return ok
}

// Display returns the human-readable label, falling back to the raw
// value for unrecognized kinds.
func (t SignalType) Display() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Types returns the closed set of recognized signal types, in display order.
func Types() []SignalType {
	return []SignalType{TypeTrending, TypePainPoint, TypeOpportunity, TypeMention}
}

// Priority ranks a signal. Counting compares exact-case against
// PriorityHigh; only CSS lower-cases, matching how badges are styled.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) Known() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// CSS returns the style-class form of the priority ("high", "medium", ...).
// Unrecognized values lower-case as-is.
func (p Priority) CSS() string {
	return strings.ToLower(string(p))
}

type Signal struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	ArabicTitle   *string    `json:"arabic_title,omitempty"`
	Summary       string     `json:"summary"`
	Type          SignalType `json:"type"`
	Sector        string     `json:"sector"`
	Platform      string     `json:"platform"`
	Priority      Priority   `json:"priority"`
	Score         *int       `json:"score,omitempty"`
	Mentions      *int       `json:"mentions,omitempty"`
	Keywords      []string   `json:"keywords,omitempty"`
	RawText       *string    `json:"raw_text,omitempty"`
	SourceURL     *string    `json:"source_url,omitempty"`
	DateCollected *string    `json:"date_collected,omitempty"`
}

// Feed is the payload shape of the upstream signal endpoint. A missing
// signals field decodes to nil and is treated as an empty snapshot.
type Feed struct {
	Signals   []Signal `json:"signals"`
	Count     int      `json:"count,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

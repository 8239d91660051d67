// Package models defines the knowledge entry type and its ordering rules.
package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/monju/internal/common"
)

// Entry is one stored knowledge note.
type Entry struct {
	// ID is the 1-based position of the entry at creation time.
	ID int `json:"id"`

	// Topic is a free-text grouping label used for exact-match filtering.
	Topic string `json:"topic"`

	Text string `json:"text"`

	// Tags is never nil so it is always persisted as a JSON array.
	Tags []string `json:"tags"`

	// Votes may go negative.
	Votes int `json:"votes"`

	// CreatedAt is a sortable local timestamp, see common.TimestampLayout.
	CreatedAt string `json:"created_at"`
}

// NewEntry builds an entry with trimmed topic, text and tags and zero votes.
func NewEntry(id int, topic, text string, tags []string, now time.Time) Entry {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		cleaned = append(cleaned, strings.TrimSpace(t))
	}

	return Entry{
		ID:        id,
		Topic:     strings.TrimSpace(topic),
		Text:      strings.TrimSpace(text),
		Tags:      cleaned,
		Votes:     0,
		CreatedAt: FormatTimestamp(now),
	}
}

// FormatTimestamp renders t in the entry timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(common.TimestampLayout)
}

// Matches reports whether the lower-cased query occurs in the entry text or topic.
func (e Entry) Matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(e.Text), lowerQuery) ||
		strings.Contains(strings.ToLower(e.Topic), lowerQuery)
}

// String formats the entry the way list and search print it.
func (e Entry) String() string {
	return fmt.Sprintf("#%d [%s] %s (votes=%d)", e.ID, e.Topic, e.Text, e.Votes)
}

// SortByRank orders entries by votes descending, then by creation time
// ascending. The sort is stable, so equal keys keep their stored order.
func SortByRank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Votes != entries[j].Votes {
			return entries[i].Votes > entries[j].Votes
		}
		return entries[i].CreatedAt < entries[j].CreatedAt
	})
}

// Normalize fills the fields a hand-edited document may leave out.
func (e *Entry) Normalize() {
	if e.Tags == nil {
		e.Tags = []string{}
	}
}

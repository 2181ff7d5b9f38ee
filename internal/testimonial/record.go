// Package testimonial defines the record stored in the testimonial store and
// the submission payload travelling from the form to the intake relay.
package testimonial

import (
	"slices"
	"time"
)

// Record is a single stored testimonial with its moderation flags.
//
// ID and Timestamp are immutable after creation. Quote, Author, Role and the
// two flags may be edited by hand in the store file; no code path here
// mutates an existing record.
type Record struct {
	ID        int       `json:"id"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Featured  bool      `json:"featured"`
	Approved  bool      `json:"approved"`
	Timestamp time.Time `json:"timestamp"`
}

// Visible reports whether the record may appear on the public page.
// Both moderation flags must be set.
func (r Record) Visible() bool {
	return r.Approved && r.Featured
}

// DeriveRole builds the display role string: the title alone, or
// "title, company" when a company is given.
func DeriveRole(title, company string) string {
	if company == "" {
		return title
	}
	return title + ", " + company
}

// NextID returns one greater than the highest id present.
// An empty slice is treated as max id 0, so the first record gets id 1.
func NextID(records []Record) int {
	maxID := 0
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// SortNewestFirst orders records by timestamp descending, keeping the
// existing order for equal timestamps.
func SortNewestFirst(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}

// FilterVisible returns the approved-and-featured subset in input order.
func FilterVisible(records []Record) []Record {
	visible := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Visible() {
			visible = append(visible, r)
		}
	}
	return visible
}

package testimonial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		company string
		want    string
	}{
		{name: "title only", title: "PM", company: "", want: "PM"},
		{name: "title and company", title: "PM", company: "Acme", want: "PM, Acme"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DeriveRole(tc.title, tc.company))
		})
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
		featured bool
		want     bool
	}{
		{name: "both set", approved: true, featured: true, want: true},
		{name: "approved only", approved: true, featured: false, want: false},
		{name: "featured only", approved: false, featured: true, want: false},
		{name: "neither", approved: false, featured: false, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{Approved: tc.approved, Featured: tc.featured}
			require.Equal(t, tc.want, r.Visible())
		})
	}
}

func TestNextID(t *testing.T) {
	require.Equal(t, 1, NextID(nil))
	require.Equal(t, 1, NextID([]Record{}))
	require.Equal(t, 8, NextID([]Record{{ID: 3}, {ID: 7}, {ID: 1}}))
	// ids are never reused even when the max sits in the middle
	require.Equal(t, 10, NextID([]Record{{ID: 2}, {ID: 9}, {ID: 4}}))
}

func TestSortNewestFirst(t *testing.T) {
	records := []Record{
		{ID: 1, Timestamp: ts("2024-01-01T00:00:00Z")},
		{ID: 2, Timestamp: ts("2025-06-01T00:00:00Z")},
		{ID: 3, Timestamp: ts("2024-06-01T00:00:00Z")},
	}

	SortNewestFirst(records)

	require.Equal(t, []int{2, 3, 1}, []int{records[0].ID, records[1].ID, records[2].ID})
}

func TestSortNewestFirst_StableForEqualTimestamps(t *testing.T) {
	same := ts("2024-01-01T00:00:00Z")
	records := []Record{
		{ID: 1, Timestamp: same},
		{ID: 2, Timestamp: same},
		{ID: 3, Timestamp: same},
	}

	SortNewestFirst(records)

	require.Equal(t, []int{1, 2, 3}, []int{records[0].ID, records[1].ID, records[2].ID})
}

func TestFilterVisible(t *testing.T) {
	records := []Record{
		{ID: 1, Approved: true, Featured: true},
		{ID: 2, Approved: true, Featured: false},
		{ID: 3, Approved: false, Featured: true},
		{ID: 4, Approved: true, Featured: true},
	}

	visible := FilterVisible(records)

	require.Len(t, visible, 2)
	require.Equal(t, 1, visible[0].ID)
	require.Equal(t, 4, visible[1].ID)

	require.Empty(t, FilterVisible(nil))
}

func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		payload SubmissionPayload
		want    bool
	}{
		{name: "all present", payload: SubmissionPayload{Testimonial: "Great work", Name: "Ana", Title: "PM"}, want: false},
		{name: "no testimonial", payload: SubmissionPayload{Name: "Ana", Title: "PM"}, want: true},
		{name: "no name", payload: SubmissionPayload{Testimonial: "x", Title: "PM"}, want: true},
		{name: "no title", payload: SubmissionPayload{Testimonial: "x", Name: "Ana"}, want: true},
		{name: "optional fields alone do not help", payload: SubmissionPayload{Company: "Acme", Email: "a@b.c"}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.payload.MissingRequired())
		})
	}
}

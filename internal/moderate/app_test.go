package moderate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kudos/internal/store"
)

func storeAt(t *testing.T, content string) *store.FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testimonials.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return store.NewFileStore(path)
}

// operator input: multiline testimonial ends on a blank line, then name,
// title, company, featured y/n, approved y/n.
func operatorInput(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestRun_AppendsApprovedFeaturedRecord(t *testing.T) {
	s := storeAt(t, "[]")
	var out bytes.Buffer

	input := operatorInput("Great work", "", "Ana", "PM", "Acme", "y", "y")
	app := NewAppWith(s, strings.NewReader(input), &out)

	require.NoError(t, app.Run(context.Background()))

	records, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 1, records[0].ID)
	require.Equal(t, "Great work", records[0].Quote)
	require.Equal(t, "Ana", records[0].Author)
	require.Equal(t, "PM, Acme", records[0].Role)
	require.True(t, records[0].Featured)
	require.True(t, records[0].Approved)

	require.Contains(t, out.String(), "Successfully added testimonial #1 from Ana")
	require.Contains(t, out.String(), "Status: Approved")
	require.Contains(t, out.String(), "Featured: Yes")
}

func TestRun_PendingWithoutCompany(t *testing.T) {
	s := storeAt(t, "[]")
	var out bytes.Buffer

	input := operatorInput("Solid partner", "", "Bo", "CTO", "", "n", "n")
	app := NewAppWith(s, strings.NewReader(input), &out)

	require.NoError(t, app.Run(context.Background()))

	records, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "CTO", records[0].Role)
	require.False(t, records[0].Featured)
	require.False(t, records[0].Approved)

	require.Contains(t, out.String(), "Status: Pending")
	require.Contains(t, out.String(), "Featured: No")
}

func TestRun_MissingRequiredFieldsWritesNothing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty testimonial", input: operatorInput("", "Ana", "PM", "", "y", "y")},
		{name: "empty name", input: operatorInput("Great", "", "", "PM", "", "y", "y")},
		{name: "empty title", input: operatorInput("Great", "", "Ana", "", "", "y", "y")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "testimonials.json")
			require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))
			s := store.NewFileStore(path)

			var out bytes.Buffer
			app := NewAppWith(s, strings.NewReader(tc.input), &out)

			err := app.Run(context.Background())
			require.ErrorIs(t, err, ErrMissingFields)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, "[]\n", string(data), "no partial record is ever written")
		})
	}
}

func TestRun_CorruptStoreAbortsBeforeWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testimonials.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	s := store.NewFileStore(path)

	var out bytes.Buffer
	input := operatorInput("Great", "", "Ana", "PM", "", "y", "y")
	app := NewAppWith(s, strings.NewReader(input), &out)

	err := app.Run(context.Background())
	require.ErrorIs(t, err, store.ErrCorrupt)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{broken", string(data))
}

func TestRun_SecondRunGetsHigherID(t *testing.T) {
	s := storeAt(t, "[]")
	ctx := context.Background()

	for i, name := range []string{"Ana", "Bo"} {
		var out bytes.Buffer
		input := operatorInput("Quote "+name, "", name, "PM", "", "y", "y")
		app := NewAppWith(s, strings.NewReader(input), &out)
		require.NoError(t, app.Run(ctx))

		records, err := s.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, i+1)
	}

	records, err := s.Load(ctx)
	require.NoError(t, err)

	ids := map[string]int{}
	for _, r := range records {
		ids[r.Author] = r.ID
	}
	require.Greater(t, ids["Bo"], ids["Ana"])
}

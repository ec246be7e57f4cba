package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsOrderedMigrations(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_create_partners.sql",
		"00002_create_events.sql",
		"00003_create_reservations.sql",
		"00004_create_reviews.sql",
	}, names)

	for _, name := range names {
		content, err := fs.ReadFile(FS, name)
		require.NoError(t, err)

		body := string(content)
		assert.True(t, strings.HasPrefix(body, "-- +goose Up"), name)
		assert.Contains(t, body, "-- +goose Down", name)
	}
}

func TestFS_PartnerEmailIsUnique(t *testing.T) {
	content, err := fs.ReadFile(FS, "00001_create_partners.sql")
	require.NoError(t, err)

	assert.Contains(t, string(content), "CREATE UNIQUE INDEX IF NOT EXISTS idx_partners_email ON partners (email)")
}

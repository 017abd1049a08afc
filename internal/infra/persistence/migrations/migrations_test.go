package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s", name)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestReservationsSchemaEnforcesStayWindow(t *testing.T) {
	raw, err := fs.ReadFile(files, "sql/000003_create_reservations.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(raw), "CHECK (start_date < end_date)")
	assert.Contains(t, string(raw), "ON DELETE CASCADE")
}

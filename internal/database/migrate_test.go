package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/internal/testhelpers"
)

func TestRunMigrationsSQLite(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)

	require.NoError(t, RunMigrations(db))
	for _, table := range []string{"users", "user_profiles", "workouts", "meals", "meal_ratings", "progress_entries", "challenges", "challenge_participants", "forum_posts", "forum_comments", "post_likes"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrationFilesOrdering(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_b.up.sql", "0001_a.up.sql", "0001_a.down.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a.up.sql", "0002_b.up.sql"}, files)
}

func TestApplyAndRollbackSQL(t *testing.T) {
	_, dsn := testhelpers.SetupPostgresDB(t)

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer sqlDB.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_widgets.up.sql"), []byte("CREATE TABLE widgets (id INT PRIMARY KEY);"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_widgets.down.sql"), []byte("DROP TABLE widgets;"), 0o600))

	applied, err := ApplySQL(sqlDB, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_widgets.up.sql"}, applied)

	applied, err = ApplySQL(sqlDB, dir)
	require.NoError(t, err)
	assert.Empty(t, applied)

	name, err := RollbackSQL(sqlDB, dir)
	require.NoError(t, err)
	assert.Equal(t, "0001_widgets.up.sql", name)

	_, err = RollbackSQL(sqlDB, dir)
	assert.ErrorIs(t, err, ErrNoMigrations)
}

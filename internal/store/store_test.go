package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ethica.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_AppliesSchemaAndPragmas(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='classifications'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "classifications", name)

	var fk string
	require.NoError(t, s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, "1", fk)
}

func TestAppend_FillsDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := &Record{
		Text:      "A drone films a public square.",
		Verdict:   "ambiguous",
		Threshold: 0.3,
	}
	require.NoError(t, s.Append(ctx, rec))

	assert.NotEmpty(t, rec.ID, "ID should be generated")
	assert.False(t, rec.CreatedAt.IsZero(), "CreatedAt should be set")

	records, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, []string{}, records[0].Principles, "nil principles stored as empty set")
}

func TestRecent_NewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, s.Append(ctx, &Record{
			Text:       text,
			Principles: []string{"privacy"},
			Verdict:    "unethical",
			Threshold:  0.3,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "third", records[0].Text)
	assert.Equal(t, "second", records[1].Text)
	assert.Equal(t, []string{"privacy"}, records[0].Principles)

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.Append(ctx, &Record{Text: "x", Verdict: "ethical", Threshold: 0.3}))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

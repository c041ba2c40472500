package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s := New()
	require.NoError(t, s.Initialize(filepath.Join(t.TempDir(), "db", "digest.db")))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashContent(t *testing.T) {
	assert.Equal(t, HashContent("same text"), HashContent("same text"))
	assert.NotEqual(t, HashContent("same text"), HashContent("other text"))
	assert.Len(t, HashContent(""), 64)
}

func TestSaveAndFind(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.Save(Record{
		SourceType:  "pdf",
		SourceName:  "report.pdf",
		ContentHash: HashContent("body"),
		Summary:     "Short summary.",
		ReadingTime: "1 min read",
		Language:    "fr",
		Fallback:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.FindByHash(HashContent("body"))
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "report.pdf", got.SourceName)
	assert.Equal(t, "Short summary.", got.Summary)
	assert.Equal(t, "fr", got.Language)
	assert.True(t, got.Fallback)
	assert.Equal(t, saved.CreatedAt.Unix(), got.CreatedAt.Unix())

	_, err = s.FindByHash(HashContent("missing"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"a.txt", "b.txt", "c.txt"} {
		_, err := s.Save(Record{
			SourceType:  "text",
			SourceName:  name,
			ContentHash: HashContent(name),
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c.txt", all[0].SourceName)
	assert.Equal(t, "a.txt", all[2].SourceName)

	two, err := s.List(2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestUninitialized(t *testing.T) {
	s := New()
	_, err := s.Save(Record{})
	assert.Error(t, err)
	_, err = s.FindByHash("x")
	assert.Error(t, err)
	_, err = s.List(1)
	assert.Error(t, err)
	assert.NoError(t, s.Close())
}

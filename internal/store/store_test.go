package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore(t *testing.T) {
	t.Run("record and read back", func(t *testing.T) {
		s := openTempStore(t)

		id, err := s.Record(Conversion{NodeCount: 2, EdgeCount: 1, BytesOut: 512})
		require.NoError(t, err)
		assert.Greater(t, id, int64(0))

		recent, err := s.Recent(10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, 2, recent[0].NodeCount)
		assert.Equal(t, 1, recent[0].EdgeCount)
		assert.Equal(t, 512, recent[0].BytesOut)
		assert.False(t, recent[0].CreatedAt.IsZero())
	})

	t.Run("recent returns newest first and honours the limit", func(t *testing.T) {
		s := openTempStore(t)

		for i := 1; i <= 5; i++ {
			_, err := s.Record(Conversion{NodeCount: i})
			require.NoError(t, err)
		}

		recent, err := s.Recent(3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Equal(t, 5, recent[0].NodeCount)
		assert.Equal(t, 4, recent[1].NodeCount)
		assert.Equal(t, 3, recent[2].NodeCount)
	})

	t.Run("empty store lists nothing", func(t *testing.T) {
		s := openTempStore(t)
		recent, err := s.Recent(10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})
}

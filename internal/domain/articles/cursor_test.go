//go:build unit
// +build unit

package articles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCursor(t *testing.T) {
	t.Run("empty means no cursor", func(t *testing.T) {
		cursor, err := ParseCursor("  ")
		require.NoError(t, err)
		assert.Nil(t, cursor)
	})

	t.Run("cursor layout with microseconds", func(t *testing.T) {
		cursor, err := ParseCursor("2024-03-01 10:20:30.123456")
		require.NoError(t, err)
		require.NotNil(t, cursor)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC), *cursor)
	})

	t.Run("cursor layout without fraction", func(t *testing.T) {
		cursor, err := ParseCursor("2024-03-01 10:20:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), *cursor)
	})

	t.Run("rfc3339 with offset is converted to UTC", func(t *testing.T) {
		cursor, err := ParseCursor("2024-03-01T12:20:30+02:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), *cursor)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseCursor("yesterday")
		assert.Error(t, err)
	})
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 20, 30, 120000000, time.UTC)

	formatted := FormatTimestamp(ts)
	assert.Equal(t, "2024-03-01 10:20:30.12", formatted)

	parsed, err := ParseCursor(formatted)
	require.NoError(t, err)
	assert.True(t, ts.Equal(*parsed))
}

package articles

import (
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
)

// CursorLayout is the wire format of paging cursors and article timestamps (UTC)
const CursorLayout = "2006-01-02 15:04:05.999999"

// ParseCursor parses a paging cursor. An empty string yields a nil cursor.
// RFC3339 timestamps are accepted as well.
func ParseCursor(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{CursorLayout, time.RFC3339Nano} {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			ts = ts.UTC()
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("unparsable timestamp %q: %w", raw, apperr.ErrInvalidArgument)
}

// FormatTimestamp renders t in CursorLayout so it can be fed back as a cursor
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(CursorLayout)
}

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp accepts the shapes a dateAdded value arrives in: epoch
// milliseconds, an RFC 3339 string, or a bare YYYY-MM-DD date.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		var ms json.Number
		if err := json.Unmarshal(data, &ms); err != nil {
			return fmt.Errorf("dateAdded: %w", err)
		}
		f, err := ms.Float64()
		if err != nil {
			return fmt.Errorf("dateAdded: %w", err)
		}
		t.Time = time.UnixMilli(int64(f)).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("dateAdded: unrecognised time %q", s)
}

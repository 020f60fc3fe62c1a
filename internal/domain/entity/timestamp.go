package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout is how the backends serialize datetimes without an offset.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Timestamp decodes backend datetimes. RFC 3339 is tried first, then the
// offset-less ISO form, which is read as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, naiveLayout, time.DateTime} {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

package types

import (
	"encoding/json"
	"time"
)

// FlexTime is a time.Time that unmarshals from either an RFC3339 timestamp
// or a plain date. Agent exports commonly carry bare filing-period dates.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

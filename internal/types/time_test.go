package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want time.Time
	}{
		"rfc3339":   {`"2023-06-15T10:30:00Z"`, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)},
		"date only": {`"2023-01-01"`, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		"empty":     {`""`, time.Time{}},
	}
	for name, tc := range cases {
		var ft FlexTime
		if err := json.Unmarshal([]byte(tc.raw), &ft); err != nil {
			t.Fatalf("%s: unmarshal %s: %v", name, tc.raw, err)
		}
		if !ft.Equal(tc.want) {
			t.Fatalf("%s: expected %v, got %v", name, tc.want, ft.Time)
		}
	}
}

func TestFlexTimeRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{`"15/06/2023"`, `"yesterday"`, `42`} {
		var ft FlexTime
		if err := json.Unmarshal([]byte(raw), &ft); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

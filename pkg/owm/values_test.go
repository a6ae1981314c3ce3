package owm

import (
	"encoding/json"
	"testing"
	"time"
)

// Coarse-precision UV responses echo truncated, zone-less instants;
// they must decode through the tolerant layouts, not strict RFC3339.
func TestUVIndexTruncatedTimestamps(t *testing.T) {
	cases := []struct {
		body string
		want time.Time
	}{
		{`{"time": "2024-03-01T12:00:00Z", "data": 1.2}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{`{"time": "2024-03-01T12:00:00", "data": 1.2}`, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{`{"time": "2024-03-01Z", "data": 1.2}`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{`{"time": "2024-03Z", "data": 1.2}`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{`{"time": "2024Z", "data": 1.2}`, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		var uv UVIndex
		if err := parseJSON(tc.body, &uv); err != nil {
			t.Fatalf("decoding %q: unexpected error: %v", tc.body, err)
		}
		if !uv.Time.Equal(tc.want) {
			t.Fatalf("decoding %q: expected %v, got %v", tc.body, tc.want, uv.Time.Time)
		}
	}
}

func TestUTCTimeJSONNull(t *testing.T) {
	var uv UVIndex
	if err := json.Unmarshal([]byte(`{"time": null, "data": 1.2}`), &uv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uv.Time.IsZero() {
		t.Fatalf("expected zero time, got %v", uv.Time.Time)
	}
}

// The history endpoint can emit message as a bare number, like the
// forecast family does; that must not fail the whole decode.
func TestHistoryNumericMessage(t *testing.T) {
	body := `{"message": 0.0043, "cod": "200", "cnt": 0, "list": []}`

	var history WeatherHistory
	if err := json.Unmarshal([]byte(body), &history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history.Message != "0.0043" {
		t.Fatalf("expected numeric message rendered as text, got %q", history.Message)
	}
	if history.Cod != 200 {
		t.Fatalf("expected code 200, got %d", history.Cod)
	}
}

func TestMessageStringAndNull(t *testing.T) {
	var m Message
	if err := json.Unmarshal([]byte(`"Count: 24"`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != "Count: 24" {
		t.Fatalf("expected plain string message, got %q", m)
	}

	if err := json.Unmarshal([]byte(`null`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != "" {
		t.Fatalf("expected empty message for null, got %q", m)
	}
}

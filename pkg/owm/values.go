package owm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UTCTime decodes the provider's zone-less timestamps. All instants in
// the API are UTC; depending on endpoint and precision they arrive as
// "2006-01-02T15:04:05", a bare date, year-month or year, with or
// without a trailing Z.
type UTCTime struct {
	time.Time
}

var utcLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
	"2006-01",
	"2006",
}

// UnmarshalJSON must be defined here: the embedded time.Time would
// otherwise promote its strict RFC3339 UnmarshalJSON and reject the
// truncated layouts.
func (t *UTCTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	return t.UnmarshalText([]byte(s))
}

func (t *UTCTime) UnmarshalText(b []byte) error {
	s := strings.TrimSuffix(strings.TrimSpace(string(b)), "Z")
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range utcLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("owm: unrecognized timestamp %q", s)
}

// UnixTime decodes the provider's unix-seconds timestamps into UTC.
type UnixTime struct {
	time.Time
}

func (t *UnixTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("owm: unrecognized unix timestamp %q", s)
	}
	t.Time = time.Unix(n, 0).UTC()
	return nil
}

// Message is a provider message field, tolerated as either a string or
// a bare number (the latter occurs in the wild).
type Message string

func (m *Message) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*m = ""
		return nil
	}
	*m = Message(messageText(v))
	return nil
}

// Code is a provider status code, tolerated as either a JSON number or
// a numeric string ("200" and 200 both occur in the wild).
type Code int

func (c *Code) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("owm: unrecognized status code %q", s)
	}
	*c = Code(n)
	return nil
}

// MainConditions is the shared "main" block of the provider's JSON
// payloads (group and history endpoints).
type MainConditions struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

// WindInfo is the shared JSON wind block.
type WindInfo struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust"`
}

// CloudsInfo is the shared JSON cloud-cover block (percent).
type CloudsInfo struct {
	All float64 `json:"all"`
}

// ConditionInfo is one entry of the shared JSON "weather" list.
type ConditionInfo struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

package owm

// WeatherHistory is the decoded historical-records document. Points is
// ordered and fully materialized at decode time.
//
// Unlike the other JSON endpoints, history responses carry a message
// field even on success, so this document is validated by its status
// code rather than by the shared error-envelope check.
type WeatherHistory struct {
	Message  Message        `json:"message"`
	Cod      Code           `json:"cod"`
	CityID   int64          `json:"city_id"`
	CalcTime float64        `json:"calctime"`
	Count    int            `json:"cnt"`
	Points   []HistoryPoint `json:"list"`

	pos int
}

// Next returns the next historical point, advancing the cursor. It
// reports false once the sequence is exhausted.
func (h *WeatherHistory) Next() (*HistoryPoint, bool) {
	if h.pos >= len(h.Points) {
		return nil, false
	}
	p := &h.Points[h.pos]
	h.pos++
	return p, true
}

// Rewind resets the cursor so the sequence can be walked again.
func (h *WeatherHistory) Rewind() { h.pos = 0 }

// Len reports the number of historical points.
func (h *WeatherHistory) Len() int { return len(h.Points) }

// HistoryPoint is one historical reading.
type HistoryPoint struct {
	Time       UnixTime           `json:"dt"`
	Main       MainConditions     `json:"main"`
	Wind       WindInfo           `json:"wind"`
	Clouds     CloudsInfo         `json:"clouds"`
	Conditions []ConditionInfo    `json:"weather"`
	Rain       map[string]float64 `json:"rain"`
	Snow       map[string]float64 `json:"snow"`
}

package owm

// CurrentWeatherGroup is the decoded grouped current-conditions
// document: one member per requested city id, in request order.
type CurrentWeatherGroup struct {
	Count   int           `json:"cnt"`
	Members []GroupMember `json:"list"`

	pos int
}

// Next returns the next member, advancing the cursor. It reports false
// once the sequence is exhausted.
func (g *CurrentWeatherGroup) Next() (*GroupMember, bool) {
	if g.pos >= len(g.Members) {
		return nil, false
	}
	m := &g.Members[g.pos]
	g.pos++
	return m, true
}

// Rewind resets the cursor so the sequence can be walked again.
func (g *CurrentWeatherGroup) Rewind() { g.pos = 0 }

// Len reports the number of members.
func (g *CurrentWeatherGroup) Len() int { return len(g.Members) }

// GroupMember is the current weather of one city in a group response.
type GroupMember struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Coord      Coord           `json:"coord"`
	Main       MainConditions  `json:"main"`
	Wind       WindInfo        `json:"wind"`
	Clouds     CloudsInfo      `json:"clouds"`
	Conditions []ConditionInfo `json:"weather"`
	Visibility float64         `json:"visibility"`
	Time       UnixTime        `json:"dt"`
	Sys        GroupSys        `json:"sys"`
}

type GroupSys struct {
	Country string   `json:"country"`
	Sunrise UnixTime `json:"sunrise"`
	Sunset  UnixTime `json:"sunset"`
}

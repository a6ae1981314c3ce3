package owm

// UVIndex is the decoded UV index document.
type UVIndex struct {
	Time     UTCTime    `json:"time"`
	Location UVLocation `json:"location"`
	Value    float64    `json:"data"`
}

type UVLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

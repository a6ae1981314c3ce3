package owm

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query identifies the place a request is about. Exactly one variant is
// used per call: Coord, CityID, CityIDs, Zip or CityName. The set is
// sealed; encoding is pure, so the same query always yields the same
// URL fragment.
type Query interface {
	fragment() (string, error)
}

// Coord is a latitude/longitude pair. It also appears as a value object
// inside decoded responses.
type Coord struct {
	Lat float64 `xml:"lat,attr" json:"lat"`
	Lon float64 `xml:"lon,attr" json:"lon"`
}

func (c Coord) fragment() (string, error) {
	if !finite(c.Lat) || !finite(c.Lon) {
		return "", ErrInvalidQuery
	}
	return "lat=" + formatFloat(c.Lat) + "&lon=" + formatFloat(c.Lon), nil
}

// CityID is a single OpenWeatherMap city id.
type CityID int64

func (id CityID) fragment() (string, error) {
	return "id=" + strconv.FormatInt(int64(id), 10), nil
}

// CityIDs is a list of city ids, encoded comma-joined for the group
// endpoint. An empty list is an invalid query.
type CityIDs []int64

func (ids CityIDs) fragment() (string, error) {
	if len(ids) == 0 {
		return "", ErrInvalidQuery
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "id=" + strings.Join(parts, ","), nil
}

// Zip is a postal code, optionally qualified with an ISO country code.
type Zip struct {
	Code    string
	Country string
}

func (z Zip) fragment() (string, error) {
	if z.Code == "" {
		return "", ErrInvalidQuery
	}
	value := z.Code
	if z.Country != "" {
		value += "," + z.Country
	}
	return "zip=" + url.QueryEscape(value), nil
}

// CityName is a free-text place name. A name with the literal prefix
// "zip:" is treated as a postal code instead.
type CityName string

func (n CityName) fragment() (string, error) {
	s := string(n)
	if s == "" {
		return "", ErrInvalidQuery
	}
	if rest, ok := strings.CutPrefix(s, "zip:"); ok {
		return Zip{Code: rest}.fragment()
	}
	return "q=" + url.QueryEscape(s), nil
}

// encodeQuery turns a place specifier into its query-string fragment.
func encodeQuery(q Query) (string, error) {
	if q == nil {
		return "", ErrInvalidQuery
	}
	return q.fragment()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

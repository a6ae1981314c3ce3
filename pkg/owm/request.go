package owm

import (
	"fmt"
	"strconv"
	"time"
)

// Endpoint templates. These are stable provider contracts.
const (
	apiBase     = "https://api.openweathermap.org/data/2.5"
	historyBase = "https://history.openweathermap.org/data/2.5"
	uvBase      = "https://api.openweathermap.org/v3/uvi"

	endpointWeather        = apiBase + "/weather"
	endpointGroup          = apiBase + "/group"
	endpointForecastHourly = apiBase + "/forecast"
	endpointForecastDaily  = apiBase + "/forecast/daily"
	endpointHistory        = historyBase + "/history/city"
)

// Mode selects the response format requested from the provider.
type Mode string

const (
	ModeXML  Mode = "xml"
	ModeJSON Mode = "json"
	// ModeHTML is pass-through only: bodies fetched in HTML mode are
	// returned raw, never parsed.
	ModeHTML Mode = "html"
)

func (m Mode) valid() bool {
	switch m {
	case ModeXML, ModeJSON, ModeHTML:
		return true
	}
	return false
}

// Units selects the measurement system for numeric readings.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// HistoryGranularity is the sampling period of a history request.
type HistoryGranularity string

const (
	GranularityTick HistoryGranularity = "tick"
	GranularityHour HistoryGranularity = "hour"
	GranularityDay  HistoryGranularity = "day"
)

func (g HistoryGranularity) valid() bool {
	switch g {
	case GranularityTick, GranularityHour, GranularityDay:
		return true
	}
	return false
}

// HistoryEnd bounds the far edge of a history request: either an instant
// (emitted as end={unix-seconds}) or a positive point count (emitted as
// cnt={count}). The zero value is invalid.
type HistoryEnd struct {
	at    time.Time
	count int
}

// EndingAt bounds a history request at a point in time.
func EndingAt(t time.Time) HistoryEnd {
	return HistoryEnd{at: t}
}

// EndingAfter bounds a history request by number of returned points.
func EndingAfter(count int) HistoryEnd {
	return HistoryEnd{count: count}
}

func (e HistoryEnd) param() (string, error) {
	switch {
	case !e.at.IsZero():
		return "end=" + strconv.FormatInt(e.at.UTC().Unix(), 10), nil
	case e.count > 0:
		return "cnt=" + strconv.Itoa(e.count), nil
	default:
		return "", fmt.Errorf("%w: history end must be an instant or a positive count", ErrInvalidArgument)
	}
}

// UVPrecision controls how much of a timestamp is serialized into a UV
// index request. Coarser precision truncates the finer fields.
type UVPrecision int

const (
	PrecisionYear UVPrecision = iota
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
)

// format serializes t at the requested precision. The provider only
// accepts UTC-qualified instants, so t is normalized first.
func (p UVPrecision) format(t time.Time) (string, error) {
	t = t.UTC()
	switch p {
	case PrecisionYear:
		return t.Format("2006") + "Z", nil
	case PrecisionMonth:
		return t.Format("2006-01") + "Z", nil
	case PrecisionDay:
		return t.Format("2006-01-02") + "Z", nil
	case PrecisionHour:
		return t.Format("2006-01-02T15") + "Z", nil
	case PrecisionMinute:
		return t.Format("2006-01-02T15:04") + "Z", nil
	case PrecisionSecond:
		return t.Format("2006-01-02T15:04:05") + "Z", nil
	default:
		return "", fmt.Errorf("%w: unknown UV precision %d", ErrInvalidArgument, int(p))
	}
}

// forecastRoute picks the endpoint and point count for a forecast
// horizon: up to 5 days rides the three-hourly endpoint (8 points per
// day), 6 to 16 days the daily endpoint (one point per day).
func forecastRoute(days int) (endpoint string, cnt int, err error) {
	switch {
	case days < 1 || days > 16:
		return "", 0, fmt.Errorf("%w: forecast horizon must be 1..16 days, got %d", ErrInvalidArgument, days)
	case days <= 5:
		return endpointForecastHourly, days * 8, nil
	default:
		return endpointForecastDaily, days, nil
	}
}

package owm

import "encoding/xml"

// WeatherForecast is the decoded forecast document. Points is ordered
// and fully materialized at decode time and bounded by the requested
// horizon; it can be ranged over directly or walked with Next/Rewind.
type WeatherForecast struct {
	XMLName  xml.Name         `xml:"weatherdata"`
	Location ForecastLocation `xml:"location"`
	Sun      Sun              `xml:"sun"`
	Points   []ForecastPoint  `xml:"forecast>time"`

	pos int
}

// Next returns the next forecast point, advancing the cursor. It
// reports false once the sequence is exhausted.
func (f *WeatherForecast) Next() (*ForecastPoint, bool) {
	if f.pos >= len(f.Points) {
		return nil, false
	}
	p := &f.Points[f.pos]
	f.pos++
	return p, true
}

// Rewind resets the cursor so the sequence can be walked again.
func (f *WeatherForecast) Rewind() { f.pos = 0 }

// Len reports the number of forecast points.
func (f *WeatherForecast) Len() int { return len(f.Points) }

// ForecastLocation describes the place a forecast covers.
type ForecastLocation struct {
	Name     string      `xml:"name"`
	Country  string      `xml:"country"`
	Position GeoPosition `xml:"location"`
}

type GeoPosition struct {
	Latitude  float64 `xml:"latitude,attr"`
	Longitude float64 `xml:"longitude,attr"`
	Altitude  float64 `xml:"altitude,attr"`
	GeobaseID int64   `xml:"geobaseid,attr"`
}

// ForecastPoint is one slot of a forecast. Three-hourly points carry
// From/To and Temperature.Value; daily points carry Day and the
// day-part temperature fields instead.
type ForecastPoint struct {
	From          UTCTime               `xml:"from,attr"`
	To            UTCTime               `xml:"to,attr"`
	Day           UTCTime               `xml:"day,attr"`
	Symbol        Symbol                `xml:"symbol"`
	Precipitation ForecastPrecipitation `xml:"precipitation"`
	WindDirection ForecastWindDirection `xml:"windDirection"`
	WindSpeed     ForecastWindSpeed     `xml:"windSpeed"`
	Temperature   ForecastTemperature   `xml:"temperature"`
	Pressure      Value                 `xml:"pressure"`
	Humidity      Value                 `xml:"humidity"`
	Clouds        ForecastClouds        `xml:"clouds"`
}

// Symbol is the categorized weather state of a forecast point.
type Symbol struct {
	Number int    `xml:"number,attr"`
	Name   string `xml:"name,attr"`
	Var    string `xml:"var,attr"`
}

type ForecastPrecipitation struct {
	Value float64 `xml:"value,attr"`
	Unit  string  `xml:"unit,attr"`
	Type  string  `xml:"type,attr"`
}

type ForecastWindDirection struct {
	Deg  float64 `xml:"deg,attr"`
	Code string  `xml:"code,attr"`
	Name string  `xml:"name,attr"`
}

type ForecastWindSpeed struct {
	MPS  float64 `xml:"mps,attr"`
	Name string  `xml:"name,attr"`
}

// ForecastTemperature merges the three-hourly shape (Value/Min/Max) and
// the daily shape (Day/Morn/Eve/Night plus Min/Max); fields absent from
// the response stay zero.
type ForecastTemperature struct {
	Value float64 `xml:"value,attr"`
	Day   float64 `xml:"day,attr"`
	Min   float64 `xml:"min,attr"`
	Max   float64 `xml:"max,attr"`
	Night float64 `xml:"night,attr"`
	Eve   float64 `xml:"eve,attr"`
	Morn  float64 `xml:"morn,attr"`
	Unit  string  `xml:"unit,attr"`
}

type ForecastClouds struct {
	Name string  `xml:"value,attr"`
	All  float64 `xml:"all,attr"`
	Unit string  `xml:"unit,attr"`
}

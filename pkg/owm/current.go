package owm

import "encoding/xml"

// CurrentWeather is the decoded current-conditions document.
type CurrentWeather struct {
	XMLName       xml.Name      `xml:"current"`
	City          City          `xml:"city"`
	Temperature   Temperature   `xml:"temperature"`
	Humidity      Value         `xml:"humidity"`
	Pressure      Value         `xml:"pressure"`
	Wind          Wind          `xml:"wind"`
	Clouds        NamedValue    `xml:"clouds"`
	Visibility    Value         `xml:"visibility"`
	Precipitation Precipitation `xml:"precipitation"`
	Condition     Condition     `xml:"weather"`
	LastUpdate    TimeValue     `xml:"lastupdate"`
}

// City identifies the place a reading belongs to.
type City struct {
	ID      int64  `xml:"id,attr"`
	Name    string `xml:"name,attr"`
	Coord   Coord  `xml:"coord"`
	Country string `xml:"country"`
	Sun     Sun    `xml:"sun"`
}

// Sun carries the day's sunrise and sunset instants.
type Sun struct {
	Rise UTCTime `xml:"rise,attr"`
	Set  UTCTime `xml:"set,attr"`
}

// Temperature is the current reading plus the observed min/max range.
type Temperature struct {
	Value float64 `xml:"value,attr"`
	Min   float64 `xml:"min,attr"`
	Max   float64 `xml:"max,attr"`
	Unit  string  `xml:"unit,attr"`
}

// Value is a unit-qualified numeric reading.
type Value struct {
	Value float64 `xml:"value,attr"`
	Unit  string  `xml:"unit,attr"`
}

// NamedValue is a numeric reading with a human-readable name.
type NamedValue struct {
	Value float64 `xml:"value,attr"`
	Name  string  `xml:"name,attr"`
}

// TimeValue is a timestamp carried in a value attribute.
type TimeValue struct {
	Value UTCTime `xml:"value,attr"`
}

type Wind struct {
	Speed     WindSpeed     `xml:"speed"`
	Direction WindDirection `xml:"direction"`
}

type WindSpeed struct {
	Value float64 `xml:"value,attr"`
	Unit  string  `xml:"unit,attr"`
	Name  string  `xml:"name,attr"`
}

type WindDirection struct {
	Value float64 `xml:"value,attr"`
	Code  string  `xml:"code,attr"`
	Name  string  `xml:"name,attr"`
}

// Precipitation reports the current precipitation mode ("no", "rain",
// "snow") and amount.
type Precipitation struct {
	Value float64 `xml:"value,attr"`
	Mode  string  `xml:"mode,attr"`
}

// Condition is the categorized weather state (id, description, icon).
type Condition struct {
	Number int    `xml:"number,attr"`
	Value  string `xml:"value,attr"`
	Icon   string `xml:"icon,attr"`
}

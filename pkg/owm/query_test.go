package owm

import (
	"errors"
	"math"
	"testing"
)

func TestCityIDFragment(t *testing.T) {
	frag, err := encodeQuery(CityID(2950159))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "id=2950159" {
		t.Fatalf("expected %q, got %q", "id=2950159", frag)
	}
}

func TestCityIDsFragment(t *testing.T) {
	frag, err := encodeQuery(CityIDs{2950159, 2643743})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "id=2950159,2643743" {
		t.Fatalf("expected comma-joined ids, got %q", frag)
	}
}

func TestCoordFragment(t *testing.T) {
	frag, err := encodeQuery(Coord{Lat: 52.52, Lon: 13.41})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "lat=52.52&lon=13.41" {
		t.Fatalf("expected lat/lon pair, got %q", frag)
	}
}

func TestCityNameEscaped(t *testing.T) {
	frag, err := encodeQuery(CityName("São Paulo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "q=S%C3%A3o+Paulo" {
		t.Fatalf("expected escaped name, got %q", frag)
	}
}

// A name with the zip: prefix must become a zip fragment, never q=.
func TestZipPrefixedName(t *testing.T) {
	frag, err := encodeQuery(CityName("zip:10115"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "zip=10115" {
		t.Fatalf("expected zip fragment, got %q", frag)
	}
}

func TestZipWithCountry(t *testing.T) {
	frag, err := encodeQuery(Zip{Code: "10115", Country: "DE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "zip=10115%2CDE" {
		t.Fatalf("expected escaped zip with country, got %q", frag)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	queries := []Query{
		CityName("Berlin"),
		CityID(2950159),
		CityIDs{1, 2, 3},
		Coord{Lat: 52.52, Lon: 13.41},
		Zip{Code: "10115", Country: "DE"},
	}
	for _, q := range queries {
		first, err := encodeQuery(q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := encodeQuery(q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatalf("encoding not deterministic: %q vs %q", first, second)
		}
	}
}

func TestInvalidQueries(t *testing.T) {
	invalid := []Query{
		nil,
		CityName(""),
		CityIDs{},
		Zip{},
		Coord{Lat: math.NaN(), Lon: 13.41},
		Coord{Lat: 52.52, Lon: math.Inf(1)},
	}
	for _, q := range invalid {
		if _, err := encodeQuery(q); !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("expected ErrInvalidQuery for %#v, got %v", q, err)
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/ajur-media/openweathermap-data-parser/internal/config"
	"github.com/ajur-media/openweathermap-data-parser/pkg/owm"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	city := flag.String("city", "", "place: name, numeric city id, or zip:CODE")
	days := flag.Int("days", 0, "forecast horizon in days (0 prints current conditions)")
	uv := flag.Bool("uv", false, "print the current UV index instead (requires -lat/-lon)")
	lat := flag.Float64("lat", 0, "latitude for -uv")
	lon := flag.Float64("lon", 0, "longitude for -uv")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.APIKey == "" {
		logger.Fatal("OWM_API_KEY is not set")
	}

	client := owm.New(
		owm.WithAPIKey(cfg.APIKey),
		owm.WithUnits(owm.Units(cfg.Units)),
		owm.WithLanguage(cfg.Language),
		owm.WithCache(owm.NewMemoryCache(), cfg.CacheTTL),
		owm.WithLogger(logger),
		owm.WithFetcher(owm.NewBreakerFetcher(owm.NewHTTPFetcher(cfg.HTTPTimeout, logger), logger)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch {
	case *uv:
		printUVIndex(ctx, client, *lat, *lon, logger)
	case *days > 0:
		printForecast(ctx, client, placeQuery(*city), *days, logger)
	default:
		printCurrentWeather(ctx, client, placeQuery(*city), logger)
	}
}

// placeQuery maps the -city flag onto a place specifier: a number is a
// city id, anything else (including zip:CODE) is handled by name.
func placeQuery(city string) owm.Query {
	if id, err := strconv.ParseInt(city, 10, 64); err == nil {
		return owm.CityID(id)
	}
	return owm.CityName(city)
}

func printCurrentWeather(ctx context.Context, client *owm.Client, q owm.Query, logger *zap.Logger) {
	weather, err := client.CurrentWeather(ctx, q)
	if err != nil {
		logger.Fatal("Failed to fetch current weather", zap.Error(err))
	}

	fmt.Printf("%s, %s: %.1f %s, %s\n",
		weather.City.Name, weather.City.Country,
		weather.Temperature.Value, weather.Temperature.Unit,
		weather.Condition.Value)
	fmt.Printf("humidity %.0f%%, pressure %.0f %s, wind %.1f %s %s\n",
		weather.Humidity.Value,
		weather.Pressure.Value, weather.Pressure.Unit,
		weather.Wind.Speed.Value, weather.Wind.Speed.Unit, weather.Wind.Direction.Code)
}

func printForecast(ctx context.Context, client *owm.Client, q owm.Query, days int, logger *zap.Logger) {
	forecast, err := client.Forecast(ctx, q, days)
	if err != nil {
		logger.Fatal("Failed to fetch forecast", zap.Error(err))
	}

	fmt.Printf("%s, %s (%d points)\n", forecast.Location.Name, forecast.Location.Country, forecast.Len())
	for point, ok := forecast.Next(); ok; point, ok = forecast.Next() {
		when := point.From.Time
		temp := point.Temperature.Value
		if when.IsZero() {
			when = point.Day.Time
			temp = point.Temperature.Day
		}
		fmt.Printf("  %s  %.1f %s  %s\n",
			when.Format("2006-01-02 15:04"), temp, point.Temperature.Unit, point.Symbol.Name)
	}
}

func printUVIndex(ctx context.Context, client *owm.Client, lat, lon float64, logger *zap.Logger) {
	uv, err := client.UVIndex(ctx, lat, lon)
	if err != nil {
		logger.Fatal("Failed to fetch UV index", zap.Error(err))
	}

	fmt.Printf("UV index at %.2f,%.2f: %.2f (%s)\n",
		uv.Location.Latitude, uv.Location.Longitude, uv.Value, uv.Time.Format(time.RFC3339))
}

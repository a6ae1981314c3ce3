// Package owm is a client for the OpenWeatherMap HTTP API.
//
// It retrieves current conditions, forecasts, historical records and the UV
// index, and normalizes the provider's mixed XML/JSON response shapes into a
// small set of typed results.
//
// Example:
//
//	client := owm.New(
//	    owm.WithAPIKey("your-api-key"),
//	    owm.WithUnits(owm.UnitsMetric),
//	    owm.WithLanguage("en"),
//	)
//
//	weather, err := client.CurrentWeather(ctx, owm.CityName("Berlin"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.1f %s\n", weather.Temperature.Value, weather.Temperature.Unit)
//
// Network transport and response caching are injectable capabilities
// (Fetcher and Cache); the package ships an http.Client based fetcher, an
// optional circuit-breaker wrapper around any fetcher, and an in-memory
// TTL cache. With no cache configured every call performs a fetch.
//
// The client never retries a failed fetch and applies no timeout of its
// own; both policies belong to the injected Fetcher.
package owm

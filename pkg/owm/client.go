package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Client talks to OpenWeatherMap. Construct it with New; the zero value
// is not usable.
//
// Concurrency: every call runs a single fetch pipeline with no internal
// locking. The stored API key and the ServedFromCache flag are plain
// fields written without synchronization, so concurrent callers must
// not rely on ServedFromCache reflecting their own call; the Raw*
// methods return provenance with the result instead.
type Client struct {
	apiKey  string
	units   Units
	lang    string
	fetcher Fetcher
	cache   Cache
	ttl     time.Duration
	logger  *zap.Logger

	wasCached bool
}

// New creates a client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		units:  UnitsMetric,
		lang:   "en",
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = NewHTTPFetcher(10*time.Second, c.logger)
	}
	return c
}

// APIKey returns the stored provider credential.
func (c *Client) APIKey() string { return c.apiKey }

// SetAPIKey replaces the stored provider credential.
func (c *Client) SetAPIKey(key string) { c.apiKey = key }

// ServedFromCache reports whether the most recently completed call was
// answered from cache. Last call wins; see the Client concurrency note.
func (c *Client) ServedFromCache() bool { return c.wasCached }

// RawResult is an undecoded response body with its cache provenance.
type RawResult struct {
	Body      string
	FromCache bool
}

// CurrentWeather retrieves current conditions for a place.
func (c *Client) CurrentWeather(ctx context.Context, q Query) (*CurrentWeather, error) {
	body, fromCache, err := c.fetchQuery(ctx, endpointWeather, q, ModeXML, "")
	if err != nil {
		return nil, err
	}
	c.wasCached = fromCache

	var current CurrentWeather
	if err := parseXML(body, &current); err != nil {
		return nil, c.report("current weather", err)
	}
	return &current, nil
}

// CurrentWeatherGroup retrieves current conditions for several city ids
// in one call. The group endpoint only speaks JSON; units and language
// are honored like everywhere else.
func (c *Client) CurrentWeatherGroup(ctx context.Context, ids []int64) (*CurrentWeatherGroup, error) {
	body, fromCache, err := c.fetchQuery(ctx, endpointGroup, CityIDs(ids), ModeJSON, "")
	if err != nil {
		return nil, err
	}
	c.wasCached = fromCache

	var group CurrentWeatherGroup
	if err := parseJSON(body, &group); err != nil {
		return nil, c.report("current weather group", err)
	}
	return &group, nil
}

// Forecast retrieves a forecast for the given horizon in days. Horizons
// up to 5 days return three-hourly points (8 per day), 6 to 16 days one
// point per day; anything longer fails before any network activity.
func (c *Client) Forecast(ctx context.Context, q Query, days int) (*WeatherForecast, error) {
	endpoint, cnt, err := forecastRoute(days)
	if err != nil {
		return nil, err
	}

	body, fromCache, err := c.fetchQuery(ctx, endpoint, q, ModeXML, "cnt="+strconv.Itoa(cnt))
	if err != nil {
		return nil, err
	}
	c.wasCached = fromCache

	var forecast WeatherForecast
	if err := parseXML(body, &forecast); err != nil {
		return nil, c.report("forecast", err)
	}
	if len(forecast.Points) > cnt {
		forecast.Points = forecast.Points[:cnt]
	}
	return &forecast, nil
}

// History retrieves historical records for a place between start and
// the given end bound, sampled at the given granularity.
func (c *Client) History(ctx context.Context, q Query, granularity HistoryGranularity, start time.Time, end HistoryEnd) (*WeatherHistory, error) {
	if !granularity.valid() {
		return nil, fmt.Errorf("%w: unknown history granularity %q", ErrInvalidArgument, string(granularity))
	}
	endParam, err := end.param()
	if err != nil {
		return nil, err
	}

	suffix := fmt.Sprintf("type=%s&start=%d&%s", granularity, start.UTC().Unix(), endParam)
	body, fromCache, err := c.fetchQuery(ctx, endpointHistory, q, ModeJSON, suffix)
	if err != nil {
		return nil, err
	}
	c.wasCached = fromCache

	// History success payloads carry a message field, so the shared
	// envelope check does not apply; the status code decides instead.
	var history WeatherHistory
	if err := json.Unmarshal([]byte(body), &history); err != nil {
		return nil, c.report("weather history", &MalformedResponseError{Body: body, Reason: err.Error()})
	}
	if history.Cod != 200 {
		return nil, c.report("weather history", &ProviderError{Message: string(history.Message), Code: int(history.Cod)})
	}
	return &history, nil
}

// UVIndex retrieves the current UV index at a coordinate.
func (c *Client) UVIndex(ctx context.Context, lat, lon float64) (*UVIndex, error) {
	return c.uvIndex(ctx, lat, lon, "current")
}

// UVIndexAt retrieves the UV index at a coordinate for an instant,
// serialized at the given precision. The instant is normalized to UTC.
func (c *Client) UVIndexAt(ctx context.Context, lat, lon float64, t time.Time, precision UVPrecision) (*UVIndex, error) {
	instant, err := precision.format(t)
	if err != nil {
		return nil, err
	}
	return c.uvIndex(ctx, lat, lon, instant)
}

func (c *Client) uvIndex(ctx context.Context, lat, lon float64, instant string) (*UVIndex, error) {
	u, err := c.uvURL(lat, lon, instant)
	if err != nil {
		return nil, err
	}

	body, fromCache, err := c.resolve(ctx, u)
	if err != nil {
		return nil, err
	}
	c.wasCached = fromCache

	var uv UVIndex
	if err := parseJSON(body, &uv); err != nil {
		return nil, c.report("uv index", err)
	}
	return &uv, nil
}

// RawCurrentWeather retrieves the undecoded current-conditions body in
// the given mode. HTML mode is passed through without validation. An
// empty appid uses the stored key.
func (c *Client) RawCurrentWeather(ctx context.Context, q Query, mode Mode, appid string) (RawResult, error) {
	return c.raw(ctx, endpointWeather, q, mode, "", appid)
}

// RawForecast retrieves the undecoded forecast body in the given mode,
// routed by horizon like Forecast.
func (c *Client) RawForecast(ctx context.Context, q Query, mode Mode, days int, appid string) (RawResult, error) {
	endpoint, cnt, err := forecastRoute(days)
	if err != nil {
		return RawResult{}, err
	}
	return c.raw(ctx, endpoint, q, mode, "cnt="+strconv.Itoa(cnt), appid)
}

// RawCurrentWeatherGroup retrieves the undecoded group body. The group
// endpoint only speaks JSON.
func (c *Client) RawCurrentWeatherGroup(ctx context.Context, ids []int64, appid string) (RawResult, error) {
	return c.raw(ctx, endpointGroup, CityIDs(ids), ModeJSON, "", appid)
}

// RawUVIndex retrieves the undecoded current UV index body.
func (c *Client) RawUVIndex(ctx context.Context, lat, lon float64) (RawResult, error) {
	u, err := c.uvURL(lat, lon, "current")
	if err != nil {
		return RawResult{}, err
	}
	body, fromCache, err := c.resolve(ctx, u)
	if err != nil {
		return RawResult{}, err
	}
	c.wasCached = fromCache
	return RawResult{Body: body, FromCache: fromCache}, nil
}

func (c *Client) raw(ctx context.Context, endpoint string, q Query, mode Mode, suffix, appid string) (RawResult, error) {
	if !mode.valid() {
		return RawResult{}, fmt.Errorf("%w: unknown response mode %q", ErrInvalidArgument, string(mode))
	}
	frag, err := encodeQuery(q)
	if err != nil {
		return RawResult{}, err
	}
	u := c.buildURL(endpoint, frag, mode, appid)
	if suffix != "" {
		u += "&" + suffix
	}
	body, fromCache, err := c.resolve(ctx, u)
	if err != nil {
		return RawResult{}, err
	}
	c.wasCached = fromCache
	return RawResult{Body: body, FromCache: fromCache}, nil
}

// fetchQuery runs the common pipeline prefix: encode the place
// specifier, compose the URL and resolve it through the cache gate.
func (c *Client) fetchQuery(ctx context.Context, endpoint string, q Query, mode Mode, suffix string) (string, bool, error) {
	frag, err := encodeQuery(q)
	if err != nil {
		return "", false, err
	}
	u := c.buildURL(endpoint, frag, mode, "")
	if suffix != "" {
		u += "&" + suffix
	}
	return c.resolve(ctx, u)
}

// buildURL composes the final request URL. An empty appid falls back to
// the stored key; the stored key may itself be empty, in which case the
// provider rejects the request (deliberately not validated here).
func (c *Client) buildURL(endpoint, fragment string, mode Mode, appid string) string {
	if appid == "" {
		appid = c.apiKey
	}
	return fmt.Sprintf("%s?%s&units=%s&lang=%s&mode=%s&appid=%s",
		endpoint, fragment, c.units, url.QueryEscape(c.lang), mode, url.QueryEscape(appid))
}

// uvURL composes a UV endpoint URL. Unlike the other endpoints, the UV
// family strictly requires a stored key and fails before composing.
func (c *Client) uvURL(lat, lon float64, instant string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}
	if !finite(lat) || !finite(lon) {
		return "", ErrInvalidQuery
	}
	return fmt.Sprintf("%s/%s,%s/%s.json?appid=%s",
		uvBase, formatFloat(lat), formatFloat(lon), instant, url.QueryEscape(c.apiKey)), nil
}

// resolve is the cache gate: serve a fresh cached body when possible,
// otherwise fetch and store. A TTL of zero (or no cache capability)
// always fetches. No locking and no coalescing: two concurrent calls
// for the same URL may both fetch, which is wasteful but safe.
func (c *Client) resolve(ctx context.Context, u string) (body string, fromCache bool, err error) {
	if c.cache == nil || c.ttl <= 0 {
		body, err = c.fetcher.Fetch(ctx, u)
		return body, false, err
	}

	if c.cache.IsFresh(u, c.ttl) {
		if cached, ok := c.cache.Get(u); ok {
			return cached, true, nil
		}
	}

	body, err = c.fetcher.Fetch(ctx, u)
	if err != nil {
		return "", false, err
	}
	c.cache.Put(u, body)
	return body, false, nil
}

// report logs a provider or decoding failure before it is returned.
func (c *Client) report(operation string, err error) error {
	c.logger.Error("response validation failed",
		zap.String("operation", operation),
		zap.Error(err))
	return err
}

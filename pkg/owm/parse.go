package owm

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// providerEnvelope is the error shape the provider emits. A successful
// payload never carries a message field, so its presence is the sole
// error discriminator. The provider sends these as JSON regardless of
// the requested response mode.
type providerEnvelope struct {
	Message any `json:"message"`
	Cod     any `json:"cod"`
}

// parseXML strictly decodes an XML body into dst. On decode failure the
// same body is reinterpreted as a JSON error envelope before a generic
// malformed-response error is raised, because provider errors always
// arrive as JSON even when XML was requested.
func parseXML(body string, dst any) error {
	err := xml.Unmarshal([]byte(body), dst)
	if err == nil {
		return nil
	}

	var env providerEnvelope
	if jerr := json.Unmarshal([]byte(body), &env); jerr == nil && env.Message != nil {
		return &ProviderError{Message: messageText(env.Message), Code: intish(env.Cod)}
	}

	return &MalformedResponseError{Body: body, Reason: err.Error()}
}

// parseJSON decodes a JSON body into dst after checking it for the
// provider error envelope.
func parseJSON(body string, dst any) error {
	var env providerEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return &MalformedResponseError{Body: body, Reason: err.Error()}
	}
	if env.Message != nil {
		return &ProviderError{Message: messageText(env.Message), Code: intish(env.Cod)}
	}
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return &MalformedResponseError{Body: body, Reason: err.Error()}
	}
	return nil
}

// messageText renders the envelope message, which the provider emits as
// either a string or a bare number.
func messageText(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case float64:
		return strconv.FormatFloat(m, 'f', -1, 64)
	default:
		return fmt.Sprint(m)
	}
}

// intish coerces the provider's status code, which arrives as either a
// JSON number or a numeric string. Anything else maps to 0.
func intish(v any) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

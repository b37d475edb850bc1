package socket

import (
	"net/url"
	"strings"
)

// Accepted URL schemes
const (
	SchemeWS  = "ws"
	SchemeWSS = "wss"
)

// ParseURL validates user input as a WebSocket URL
func ParseURL(input string) (*url.URL, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyURL
	}

	u, err := url.Parse(input)
	if err != nil {
		return nil, &URLError{Input: input, Err: err}
	}

	// url.Parse lowercases the scheme
	if u.Scheme != SchemeWS && u.Scheme != SchemeWSS {
		return nil, &URLError{Input: input, Err: ErrUnsupportedScheme}
	}

	if u.Host == "" {
		return nil, &URLError{Input: input, Err: ErrMissingHost}
	}

	return u, nil
}

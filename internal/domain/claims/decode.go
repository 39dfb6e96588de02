// Package claims reads the payload of a bearer token without verifying it.
//
// The result is a UI hint only. It must never be used to grant access: the quotely
// backend verifies the token on every data request.
package claims

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quotely/internal/domain/entities"

	jwt "github.com/golang-jwt/jwt/v4"
)

// ErrMalformedToken marks a token whose shape or payload cannot be read.
var ErrMalformedToken = errors.New("malformed session token")

// Decode splits a header.payload.signature token and parses its payload.
//
// An empty token returns (nil, nil): unauthenticated is not an error.
func Decode(rawToken string) (*entities.Claims, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil, nil
	}

	segments := strings.Split(rawToken, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	payload, err := jwt.DecodeSegment(segments[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not base64url: %v", ErrMalformedToken, err)
	}

	// A JSON object is required; arrays, strings and null are rejected.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil || probe == nil {
		return nil, fmt.Errorf("%w: payload is not a json object", ErrMalformedToken)
	}

	var c entities.Claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return &c, nil
}

// Package token decodes the compact signed tokens issued by the account API.
//
// The client never verifies signatures: it holds no key, and trust comes from
// the TLS channel a token arrived on. Decoding only extracts claims, so a
// stored or link-delivered token can be checked for expiry before use.
package token

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authkeeper/authkeeper/internal/common"
)

// Token pairs the wire-format signed string with its expiry claim.
// A Token is immutable: it is replaced, never mutated.
type Token struct {
	Raw       string
	ExpiresAt int64 // seconds since epoch
}

var parser = jwt.NewParser()

// Decode parses raw and requires an expiry in the future. Malformed input and
// an absent or elapsed exp claim all yield (nil, nil): callers treat them
// uniformly as "no token". Errors other than structural invalidity are
// returned rather than masked.
func Decode(raw string) (*Token, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, nil
		}
		return nil, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		// exp of the wrong type is structural invalidity, same as malformed.
		return nil, nil
	}
	if exp == nil || !exp.After(time.Now()) {
		return nil, nil
	}
	return &Token{Raw: raw, ExpiresAt: exp.Unix()}, nil
}

// DecodeTrusted decodes a token that just arrived in a successful API
// response. Expiry is not validated: an already-elapsed exp is accepted. A
// token the server issued without an exp claim, or one that fails to parse,
// is a contract violation and is surfaced as an error.
func DecodeTrusted(raw string) (*Token, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("decoding trusted token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("trusted token has no expiration time: %w", common.ErrInvalidToken)
	}
	return &Token{Raw: raw, ExpiresAt: exp.Unix()}, nil
}

// FromQuery extracts the one-time token carried in a location's query string
// under the key "token". The second result reports whether the parameter was
// present at all; a present but malformed or expired value yields (nil, true).
func FromQuery(location string) (*Token, bool) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, false
	}
	raw := u.Query().Get("token")
	if raw == "" {
		return nil, false
	}
	t, err := Decode(raw)
	if err != nil {
		return nil, true
	}
	return t, true
}

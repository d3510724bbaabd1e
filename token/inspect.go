package token

import (
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-userinfo-client/internal/errors"
)

// NowTimeFunc is overridable for testing
var NowTimeFunc = time.Now

// Inspection holds the claims a client can read from a bearer token without
// verifying its signature. Verification belongs to the provider; this is a
// preflight so callers can avoid sending a token that is already expired.
type Inspection struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
	Expired   bool
}

// Inspect parses raw as an unverified JWT. Opaque (non-JWT) tokens return
// ErrOpaqueToken, which callers should treat as "cannot preflight, send
// anyway".
func Inspect(raw string) (*Inspection, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.ErrEmptyToken
	}
	if strings.Count(raw, ".") != 2 {
		return nil, errors.ErrOpaqueToken
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrOpaqueToken, err)
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.ErrOpaqueToken
	}

	sub, _ := claims["sub"].(string)
	iss, _ := claims["iss"].(string)

	inspection := &Inspection{Subject: sub, Issuer: iss}
	if exp, ok := claims["exp"].(float64); ok {
		inspection.ExpiresAt = time.Unix(int64(exp), 0)
		inspection.Expired = NowTimeFunc().After(inspection.ExpiresAt)
	}
	return inspection, nil
}

package helpers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// segments may arrive with or without base64 padding
var payloadParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeClaims returns the claim set carried in the payload segment of a
// compact JWT. The signature is NOT verified.
func DecodeClaims(token string) (jwt.MapClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, ErrMalformedToken
	}
	raw, err := payloadParser.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return claims, nil
}

// StringClaim returns claims[name] when it is a string.
func StringClaim(claims jwt.MapClaims, name string) (string, bool) {
	v, ok := claims[name].(string)
	return v, ok
}
